// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/panorama/main.go
// Summary: Terminal front end for the overview engine.
// Usage: Run `panorama` for the simulated desktop, `panorama -backend=x11`
//        to drive a real EWMH window manager.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"panorama/config"
	"panorama/internal/demo"
	"panorama/internal/history"
	"panorama/internal/x11"
	"panorama/overview"
	"panorama/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("panorama", flag.ContinueOnError)
	backend := fs.String("backend", "", "Window system backend: demo or x11 (default from config)")
	logPath := fs.String("log", "panorama.log", "File to append logs")
	historyPath := fs.String("history", "", "History database path (default from config)")
	noHistory := fs.Bool("no-history", false, "Disable session history recording")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Println("Panorama starting...")

	if cfgErr := config.Err(); cfgErr != nil {
		log.Printf("Main: Config load problem, using defaults: %v", cfgErr)
	}
	if *backend == "" {
		*backend = config.RenderBackend()
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("panorama needs an interactive terminal")
	}

	var recorder overview.Recorder
	if !*noHistory && config.HistoryEnabled() {
		path := *historyPath
		if path == "" {
			path = config.HistoryPath()
		}
		if path == "" {
			if path, err = history.DefaultPath(); err != nil {
				return fmt.Errorf("resolve history path: %w", err)
			}
		}
		store, err := history.Open(path)
		if err != nil {
			log.Printf("Main: History disabled: %v", err)
		} else {
			defer store.Close()
			recorder = store
		}
	}

	var windows overview.WindowSystem
	switch *backend {
	case "x11":
		conn, err := x11.NewConnection()
		if err != nil {
			return fmt.Errorf("connect to X11: %w", err)
		}
		defer conn.Close()
		windows = x11.NewWindowSystem(conn)
	case "demo":
		sys := buildDemoDesktop()
		defer sys.CloseContents()
		windows = sys
	default:
		return fmt.Errorf("unknown backend %q", *backend)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	driver := render.NewTcellScreenDriver(screen)
	if err := driver.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer driver.Fini()
	driver.SetStyle(tcell.StyleDefault)
	driver.HideCursor()
	driver.EnableMouse()

	set := render.NewTransformSet()
	controller := overview.NewController(overview.Host{
		Windows:    windows,
		Transforms: set,
		Captures:   set,
		Snapshots:  set,
		Recorder:   recorder,
	}, config.OverviewOptions())
	renderer := render.NewRenderer(driver)

	return eventLoop(driver, renderer, controller, windows)
}

const frameInterval = 16 * time.Millisecond

func eventLoop(driver render.ScreenDriver, renderer *render.Renderer,
	c *overview.Controller, windows overview.WindowSystem) error {

	toggleKey := toggleKeyFromName(config.ToggleKey())
	hint := fmt.Sprintf("%s or space: overview   tab: next workspace   q: quit",
		config.ToggleKey())

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := driver.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var buttons tcell.ButtonMask
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			now := time.Now()
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape:
					if c.Active() {
						c.Deactivate(now)
					} else {
						return nil
					}
				case ev.Key() == toggleKey,
					ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					c.Toggle(now)
				case ev.Key() == tcell.KeyTab:
					c.Navigate(c.CurrentWorkspace()+1, now)
				case ev.Key() == tcell.KeyBacktab:
					c.Navigate(c.CurrentWorkspace()-1, now)
				case ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() <= '9':
					c.Navigate(int(ev.Rune()-'1'), now)
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return nil
				}
			case *tcell.EventMouse:
				cellX, cellY := ev.Position()
				w, h := driver.Size()
				p := render.PointerToLayout(c, cellX, cellY, w, h)
				c.OnPointerMotion(p, now)

				pressed := ev.Buttons()&tcell.Button1 != 0
				wasPressed := buttons&tcell.Button1 != 0
				if pressed != wasPressed {
					c.OnPointerButton(overview.ButtonPrimary, pressed, p, now)
				}
				buttons = ev.Buttons()
			}
		case <-ticker.C:
			if c.Tick(time.Now()) {
				renderer.Frame(c)
			} else {
				renderer.Desktop(windows, hint)
			}
		}
	}
}

func buildDemoDesktop() *demo.WindowSystem {
	sys := demo.NewWindowSystem(3, 1)

	editor := sys.AddWindow(0, "editor", overview.Geometry{X: 80, Y: 60, W: 720, H: 520})
	shell := sys.AddWindow(0, "shell", overview.Geometry{X: 860, Y: 120, W: 620, H: 440})
	sys.AddWindow(0, "browser", overview.Geometry{X: 300, Y: 380, W: 900, H: 460})
	sys.AddWindow(1, "music", overview.Geometry{X: 200, Y: 150, W: 700, H: 500})
	sys.AddWindow(2, "logs", overview.Geometry{X: 100, Y: 100, W: 1200, H: 640})

	// Live pty output makes the demo windows feel inhabited; failures
	// just leave static titles.
	if content, err := demo.StartPty("/bin/sh", "-c",
		"while true; do date; sleep 2; done"); err == nil {
		sys.AttachContent(editor, content)
	}
	if content, err := demo.StartPty("/bin/sh", "-c",
		"while true; do uptime; sleep 5; done"); err == nil {
		sys.AttachContent(shell, content)
	}
	return sys
}

func toggleKeyFromName(name string) tcell.Key {
	keys := map[string]tcell.Key{
		"F1": tcell.KeyF1, "F2": tcell.KeyF2, "F3": tcell.KeyF3,
		"F4": tcell.KeyF4, "F5": tcell.KeyF5, "F6": tcell.KeyF6,
		"F7": tcell.KeyF7, "F8": tcell.KeyF8, "F9": tcell.KeyF9,
		"F10": tcell.KeyF10, "F11": tcell.KeyF11, "F12": tcell.KeyF12,
	}
	if key, ok := keys[name]; ok {
		return key
	}
	return tcell.KeyF8
}
