// Package main is a small editor built on the textpane widget. It
// demonstrates the render contract: the widget is rebuilt on every
// frame while the scroll position persists in the TextArea's viewport.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textpane/internal/config"
	"github.com/dshills/textpane/internal/renderer"
	"github.com/dshills/textpane/internal/renderer/backend"
	"github.com/dshills/textpane/internal/renderer/core"
	"github.com/dshills/textpane/internal/renderer/frame"
	"github.com/dshills/textpane/internal/textarea"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to configuration file (.toml, .yaml or .lua)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	ta, err := openTextArea(flag.Arg(0), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	app := &app{ta: ta, cfg: cfg}

	// Set up live reload before the terminal owns the screen so a
	// failure is still visible on stderr.
	if *configPath != "" {
		w, err := config.Watch(*configPath, app.setConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: config reload disabled: %v\n", err)
		} else {
			defer w.Close()
		}
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing terminal: %v\n", err)
		return 1
	}
	defer term.Fini()
	app.term = term

	app.loop()
	return 0
}

func openTextArea(path string, cfg config.Config) (*textarea.TextArea, error) {
	opts := []textarea.Option{
		textarea.WithPlaceholder(cfg.Placeholder),
		textarea.WithTabWidth(cfg.TabWidth),
	}
	if path == "" {
		return textarea.New(opts...), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return textarea.New(opts...), nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return textarea.NewFromString(string(data), opts...), nil
}

type app struct {
	term *backend.Terminal
	ta   *textarea.TextArea

	mu  sync.Mutex
	cfg config.Config
}

// setConfig swaps the configuration; the next frame picks it up.
func (a *app) setConfig(cfg config.Config) {
	a.mu.Lock()
	a.cfg = cfg
	a.mu.Unlock()
}

func (a *app) config() config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

func (a *app) loop() {
	for {
		a.render()

		switch ev := a.term.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			a.term.Resize(w, h)
		case *tcell.EventKey:
			if !a.handleKey(ev) {
				return
			}
		}
	}
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyEscape:
		return false
	case tcell.KeyUp:
		a.ta.CursorUp()
	case tcell.KeyDown:
		a.ta.CursorDown()
	case tcell.KeyLeft:
		a.ta.CursorLeft()
	case tcell.KeyRight:
		a.ta.CursorRight()
	case tcell.KeyHome:
		a.ta.CursorLineStart()
	case tcell.KeyEnd:
		a.ta.CursorLineEnd()
	case tcell.KeyPgUp:
		a.ta.ScrollPages(-1)
	case tcell.KeyPgDn:
		a.ta.ScrollPages(1)
	case tcell.KeyCtrlU:
		a.ta.ScrollHalfPages(-1)
	case tcell.KeyCtrlD:
		a.ta.ScrollHalfPages(1)
	case tcell.KeyCtrlA:
		a.ta.CursorTop()
	case tcell.KeyCtrlE:
		a.ta.CursorBottom()
	case tcell.KeyEnter:
		a.ta.InsertNewline()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.ta.DeleteBackward()
	case tcell.KeyDelete:
		a.ta.DeleteForward()
	case tcell.KeyTab:
		a.ta.InsertRune('\t')
	case tcell.KeyRune:
		a.ta.InsertRune(ev.Rune())
	}
	return true
}

// render rebuilds the widget from the current configuration and draws
// one frame.
func (a *app) render() {
	cfg := a.config()
	a.ta.SetStyle(styleFromTheme(cfg.Theme.Foreground, cfg.Theme.Background))

	var opts []renderer.Option
	if f := frameFromConfig(cfg); f.Line != frame.LineNone {
		opts = append(opts, renderer.WithFrame(f))
	}
	if cfg.LineNumbers {
		gutterStyle := styleFromTheme(cfg.Theme.Gutter, cfg.Theme.Background).
			WithAttributes(core.AttrDim)
		opts = append(opts, renderer.WithLineNumbers(gutterStyle))
	}
	w := renderer.New(opts...)

	width, height := a.term.Size()
	a.term.Clear()
	x, y, ok := w.Render(a.term, core.NewRect(0, 0, width, height), a.ta)
	if ok {
		a.term.ShowCursor(x, y)
	} else {
		a.term.HideCursor()
	}
	a.term.Show()
}

func frameFromConfig(cfg config.Config) frame.Frame {
	var line frame.LineStyle
	switch cfg.Border {
	case "single":
		line = frame.LineSingle
	case "rounded":
		line = frame.LineRounded
	case "double":
		line = frame.LineDouble
	default:
		return frame.Frame{}
	}
	f := frame.New(line).WithStyle(styleFromTheme(cfg.Theme.Border, ""))
	if cfg.Title != "" {
		f = f.WithTitle(cfg.Title)
	}
	return f
}

// styleFromTheme builds a style from hex colors, falling back to the
// terminal defaults on empty or malformed values.
func styleFromTheme(fg, bg string) core.Style {
	style := core.DefaultStyle()
	if fg != "" {
		if c, err := core.ColorFromHex(fg); err == nil {
			style = style.WithForeground(c)
		}
	}
	if bg != "" {
		if c, err := core.ColorFromHex(bg); err == nil {
			style = style.WithBackground(c)
		}
	}
	return style
}
