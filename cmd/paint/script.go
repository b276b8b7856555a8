package main

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/32bitkid/paint"
	"github.com/32bitkid/paint/screen"
	"github.com/32bitkid/paint/stroke"
)

// command is one parsed script line.
type command struct {
	line int
	name string
	args []string
}

// parseScript splits a script into commands. Blank lines and lines starting
// with '#' are skipped.
func parseScript(r io.Reader) ([]command, error) {
	var cmds []command
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		cmds = append(cmds, command{
			line: n,
			name: strings.ToLower(fields[0]),
			args: fields[1:],
		})
	}
	return cmds, scanner.Err()
}

// run applies the commands to area in order and stops at the first error.
func run(area *paint.Area, cmds []command) error {
	for _, cmd := range cmds {
		if err := exec(area, cmd); err != nil {
			return fmt.Errorf("line %d: %s: %w", cmd.line, cmd.name, err)
		}
	}
	return nil
}

func exec(area *paint.Area, cmd command) error {
	switch cmd.name {
	case "new":
		size, err := argSize(cmd, 0)
		if err != nil {
			return err
		}
		area.NewImage(size)
	case "open":
		path, err := argString(cmd, 0)
		if err != nil {
			return err
		}
		return area.Open(path)
	case "save":
		path, err := argString(cmd, 0)
		if err != nil {
			return err
		}
		format, _ := argString(cmd, 1)
		return area.Save(path, format)
	case "clear":
		area.Clear()
	case "tool":
		name, err := argString(cmd, 0)
		if err != nil {
			return err
		}
		switch strings.ToLower(name) {
		case "pen":
			area.SetTool(stroke.KindPen)
		case "brush":
			area.SetTool(stroke.KindBrush)
		default:
			return fmt.Errorf("unknown tool %q", name)
		}
	case "size":
		n, err := argInt(cmd, 0)
		if err != nil {
			return err
		}
		area.SetPenSize(n)
	case "color":
		s, err := argString(cmd, 0)
		if err != nil {
			return err
		}
		c, err := screen.ParseColor(s)
		if err != nil {
			return err
		}
		area.SetPenColor(c)
	case "brush":
		s, err := argString(cmd, 0)
		if err != nil {
			return err
		}
		if strings.HasPrefix(s, "#") {
			c, err := screen.ParseColor(s)
			if err != nil {
				return err
			}
			area.SetBrushColor(c)
			return nil
		}
		return area.SetBrushImage(s)
	case "down", "move", "up":
		p, err := argPoint(cmd, 0)
		if err != nil {
			return err
		}
		area.Handle(pointerEvent(cmd.name, p))
	case "line":
		from, err := argPoint(cmd, 0)
		if err != nil {
			return err
		}
		to, err := argPoint(cmd, 2)
		if err != nil {
			return err
		}
		area.Handle(pointerEvent("down", from))
		area.Handle(pointerEvent("up", to))
	default:
		return fmt.Errorf("unknown command")
	}
	return nil
}

func pointerEvent(name string, p image.Point) paint.Event {
	ev := paint.Event{Position: p, Buttons: paint.ButtonPrimary}
	switch name {
	case "down":
		ev.Kind = paint.Press
	case "move":
		ev.Kind = paint.Move
	case "up":
		ev.Kind = paint.Release
	}
	return ev
}

func argString(cmd command, i int) (string, error) {
	if i >= len(cmd.args) {
		return "", fmt.Errorf("missing argument %d", i+1)
	}
	return cmd.args[i], nil
}

func argInt(cmd command, i int) (int, error) {
	s, err := argString(cmd, i)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

func argPoint(cmd command, i int) (image.Point, error) {
	x, err := argInt(cmd, i)
	if err != nil {
		return image.Point{}, err
	}
	y, err := argInt(cmd, i+1)
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(x, y), nil
}

func argSize(cmd command, i int) (image.Point, error) {
	s, err := argString(cmd, i)
	if err != nil {
		return image.Point{}, err
	}
	return parseSize(s)
}

// parseSize reads a WIDTHxHEIGHT pair.
func parseSize(s string) (image.Point, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, fmt.Errorf("invalid size %q", s)
	}
	x, err := strconv.Atoi(w)
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid size %q", s)
	}
	y, err := strconv.Atoi(h)
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid size %q", s)
	}
	if x <= 0 || y <= 0 {
		return image.Point{}, fmt.Errorf("invalid size %q", s)
	}
	return image.Pt(x, y), nil
}
