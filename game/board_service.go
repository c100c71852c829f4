package game

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minefield/models"
)

var log = logrus.WithField("component", "game")

var ErrServiceStopped = errors.New("board service stopped")

type TaskType int

const (
	RenderTaskType TaskType = iota
	OpenCellTaskType
	OpenAllTaskType
	NewBoardTaskType
)

func (t TaskType) String() string {
	switch t {
	case RenderTaskType:
		return "render"
	case OpenCellTaskType:
		return "open-cell"
	case OpenAllTaskType:
		return "open-all"
	case NewBoardTaskType:
		return "new-board"
	default:
		return fmt.Sprintf("task(%d)", int(t))
	}
}

type Task struct {
	Type TaskType
	Row  int
	Col  int

	rows []string
	done chan error
}

func NewTask(taskType TaskType, row, col int) *Task {
	return &Task{Type: taskType, Row: row, Col: col, done: make(chan error, 1)}
}

// BoardService owns a board and applies every task to it from a single
// goroutine, so callers on other goroutines never touch the board directly.
type BoardService struct {
	board    *models.Board
	tasks    chan *Task
	quit     chan struct{}
	stopOnce sync.Once
	onChange func(rows []string)
}

func NewBoardService(board *models.Board) *BoardService {
	return &BoardService{
		board: board,
		tasks: make(chan *Task),
		quit:  make(chan struct{}),
	}
}

// OnChange registers a hook that receives the rendered rows after every
// applied task. It must be set before Start.
func (s *BoardService) OnChange(fn func(rows []string)) {
	s.onChange = fn
}

func (s *BoardService) Start() {
	go s.taskPipeline()
}

func (s *BoardService) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
}

// Submit hands the task to the pipeline and waits for it to be applied.
func (s *BoardService) Submit(task *Task) error {
	select {
	case s.tasks <- task:
	case <-s.quit:
		return ErrServiceStopped
	}
	return <-task.done
}

// Snapshot returns the rendered rows as the pipeline sees them.
func (s *BoardService) Snapshot() ([]string, error) {
	task := NewTask(RenderTaskType, 0, 0)
	if err := s.Submit(task); err != nil {
		return nil, err
	}
	return task.rows, nil
}

func (s *BoardService) taskPipeline() {
	for {
		select {
		case task := <-s.tasks:
			err := s.apply(task)
			if err != nil {
				log.WithError(err).WithFields(logrus.Fields{
					"task": task.Type,
					"row":  task.Row,
					"col":  task.Col,
				}).Warn("task failed")
			} else if s.onChange != nil {
				s.onChange(task.rows)
			}
			task.done <- err
		case <-s.quit:
			return
		}
	}
}

func (s *BoardService) apply(task *Task) error {
	switch task.Type {
	case RenderTaskType:
	case OpenCellTaskType:
		if err := s.board.OpenCell(task.Row, task.Col); err != nil {
			return err
		}
	case OpenAllTaskType:
		s.board.OpenAll()
	case NewBoardTaskType:
		s.board.Init()
		log.WithFields(logrus.Fields{
			"side_length": s.board.SideLength(),
			"mine_count":  s.board.MineCount(),
		}).Info("board rebuilt")
	default:
		return fmt.Errorf("unknown task type %v", task.Type)
	}
	task.rows = slices.Collect(s.board.Render())
	return nil
}
