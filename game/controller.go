package game

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Controller runs the terminal inspector: a table view of the board plus
// key bindings that turn into service tasks.
type Controller struct {
	service  *BoardService
	renderer *Renderer
	app      *tview.Application

	// keys carries tasks from the event loop to forwardKeys in press order.
	keys      chan *Task
	forwarded chan struct{}
}

const keyQueueSize = 64

func NewController(service *BoardService, renderer *Renderer) *Controller {
	return &Controller{
		service:   service,
		renderer:  renderer,
		keys:      make(chan *Task, keyQueueSize),
		forwarded: make(chan struct{}),
	}
}

// Run blocks until the user quits.
func (c *Controller) Run() error {
	c.app = tview.NewApplication()
	c.service.OnChange(func(rows []string) {
		c.app.QueueUpdateDraw(func() { c.renderer.DrawRows(rows) })
	})
	c.service.Start()
	defer c.service.Stop()
	go c.forwardKeys()
	// The event loop is the only sender and has returned by the time this runs.
	defer close(c.keys)

	rows, err := c.service.Snapshot()
	if err != nil {
		return err
	}
	c.renderer.DrawBoard(rows)
	c.handleInput()
	c.app.SetRoot(c.renderer.Table(), true)
	return c.app.Run()
}

func (c *Controller) Stop() {
	if c.app != nil {
		c.app.Stop()
	}
}

func (c *Controller) handleInput() {
	table := c.renderer.Table()
	table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if isQuitKey(event) {
			c.Stop()
			return nil
		}
		row, col := table.GetSelection()
		task := keyTask(event, row, col)
		if task == nil {
			return event
		}
		c.enqueue(task)
		return nil
	})
}

// enqueue never blocks the event loop: Submit waits on the pipeline, which
// may itself queue a redraw. A full queue drops the key.
func (c *Controller) enqueue(task *Task) bool {
	select {
	case c.keys <- task:
		return true
	default:
		log.WithField("task", task.Type).Warn("input queue full, key dropped")
		return false
	}
}

// forwardKeys submits queued tasks one at a time until keys is closed.
func (c *Controller) forwardKeys() {
	defer close(c.forwarded)
	for task := range c.keys {
		c.submit(task)
	}
}

func (c *Controller) submit(task *Task) {
	err := c.service.Submit(task)
	if err != nil && !errors.Is(err, ErrServiceStopped) {
		log.WithError(err).WithField("task", task.Type).Error("submit failed")
	}
}

func isQuitKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return event.Rune() == 'q' || event.Rune() == 'Q'
	}
	return false
}

// keyTask maps a key press on the selected cell to a task, or nil when the
// key is not bound.
func keyTask(event *tcell.EventKey, row, col int) *Task {
	switch event.Key() {
	case tcell.KeyEnter:
		return NewTask(OpenCellTaskType, row, col)
	case tcell.KeyRune:
		switch event.Rune() {
		case 'a', 'A':
			return NewTask(OpenAllTaskType, row, col)
		case 'n', 'N':
			return NewTask(NewBoardTaskType, row, col)
		}
	}
	return nil
}
