package modes

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/parameter"
)

// InputHandler processes user input events
type InputHandler struct {
	session *Session

	// Mouse state from the previous event, for press edges and drag deltas
	buttons tcell.ButtonMask
	lastX   int
	lastY   int
}

// NewInputHandler creates a new input handler
func NewInputHandler(session *Session) *InputHandler {
	return &InputHandler{session: session}
}

// HandleEvent processes a tcell event and returns false if the simulator should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		h.handleMouseEvent(ev)
	case *tcell.EventResize:
		w, height := ev.Size()
		h.session.Renderer.Resize(w, height)
	}
	return true
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	s := h.session

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return false
	case tcell.KeyUp:
		s.Camera.PanBy(0, parameter.CameraPanKeyStep)
		return true
	case tcell.KeyDown:
		s.Camera.PanBy(0, -parameter.CameraPanKeyStep)
		return true
	case tcell.KeyLeft:
		s.Camera.PanBy(parameter.CameraPanKeyStep, 0)
		return true
	case tcell.KeyRight:
		s.Camera.PanBy(-parameter.CameraPanKeyStep, 0)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); r {
	case 'q':
		return false
	case ' ':
		s.TogglePause()
	case '+', '=':
		s.SetSpeed(s.Speed.Faster())
	case '-', '_':
		s.SetSpeed(s.Speed.Slower())
	case '1', '2', '3', '4', '5':
		s.SetSpeed(engine.SpeedMode(r - '1'))
	case 'r':
		n := s.Release()
		log.Printf("input: released %d traces", n)
	case 'c':
		s.Renderer.ToggleTraces()
	case 'x':
		s.Reset()
	case '0':
		s.Recenter()
	case 'm':
		s.Sound.SetMuted(!s.Sound.Muted())
	}
	return true
}

// handleMouseEvent spawns on primary press, adds attractors on secondary press,
// pans while the middle button is held and zooms on the wheel
func (h *InputHandler) handleMouseEvent(ev *tcell.EventMouse) {
	s := h.session
	x, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons &^ h.buttons

	inView := y < s.Renderer.ViewHeight()

	switch {
	case pressed&tcell.ButtonPrimary != 0 && inView:
		s.SpawnAt(x, y, parameter.SpawnMass, ev.Modifiers()&tcell.ModShift != 0)
	case pressed&tcell.ButtonSecondary != 0 && inView:
		if tag := s.AttractorAt(x, y, parameter.AttractorMass); tag != 0 {
			log.Printf("input: attractor %d added", tag)
		}
	}

	if buttons&tcell.ButtonMiddle != 0 && h.buttons&tcell.ButtonMiddle != 0 {
		s.Camera.PanBy(float64(x-h.lastX), float64(y-h.lastY))
	}

	if buttons&tcell.WheelUp != 0 {
		s.Camera.ZoomAt(x, y, 1)
	}
	if buttons&tcell.WheelDown != 0 {
		s.Camera.ZoomAt(x, y, -1)
	}

	// Wheel bits are momentary and never count as held
	h.buttons = buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
	h.lastX, h.lastY = x, y
}
