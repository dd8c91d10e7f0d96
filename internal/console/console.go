// Package console is the terminal front end: it shows a menu per record
// kind, collects field text and prints the outcome of each operation.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mmynk/eventdesk/internal/schema"
	"github.com/mmynk/eventdesk/internal/service"
)

// Console reads commands from in and writes prompts and results to out.
type Console struct {
	session *service.Session
	in      *bufio.Scanner
	out     io.Writer
}

// New creates a Console over the given session.
func New(s *service.Session, in io.Reader, out io.Writer) *Console {
	return &Console{session: s, in: bufio.NewScanner(in), out: out}
}

// Run shows the main menu until the user quits or input ends.
func (c *Console) Run(ctx context.Context) error {
	handlers := c.session.Handlers()
	for {
		c.printf("\nEvent Management System\n")
		for i, h := range handlers {
			c.printf("  %d) Manage %ss\n", i+1, h.Title())
		}
		c.printf("  q) Quit\n")

		choice, ok := c.prompt(">")
		if !ok {
			return c.in.Err()
		}
		if isQuit(choice) {
			return nil
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(handlers) {
			c.printf("Unknown choice %q\n", choice)
			continue
		}
		if quit := c.manage(ctx, handlers[n-1]); quit {
			return c.in.Err()
		}
	}
}

// manage runs the menu of one record kind. It reports true when input ended.
func (c *Console) manage(ctx context.Context, h service.Handler) bool {
	for {
		title := h.Title()
		c.printf("\nManage %ss (%d stored)\n", title, h.Len())
		c.printf("  1) Add %s\n  2) Display %s\n  3) Delete %s\n  b) Back\n", title, title, title)

		choice, ok := c.prompt(">")
		if !ok {
			return true
		}
		switch strings.ToLower(choice) {
		case "1", "add":
			form, ok := c.readForm(h.Fields())
			if !ok {
				return true
			}
			msg, err := h.Add(ctx, form)
			c.report(title, "Success", msg, err)
		case "2", "display":
			id, ok := c.prompt(h.Fields()[0].Label + ":")
			if !ok {
				return true
			}
			details, err := h.Display(ctx, id)
			c.report(title, title+" Details", details, err)
		case "3", "delete":
			id, ok := c.prompt(h.Fields()[0].Label + ":")
			if !ok {
				return true
			}
			msg, err := h.Delete(ctx, id)
			c.report(title, "Success", msg, err)
		case "b", "back":
			return false
		default:
			if isQuit(choice) {
				return false
			}
			c.printf("Unknown choice %q\n", choice)
		}
	}
}

func (c *Console) readForm(fields []schema.Field) (schema.Form, bool) {
	form := make(schema.Form, len(fields))
	for _, f := range fields {
		v, ok := c.prompt(f.Label + ":")
		if !ok {
			return nil, false
		}
		form[f.Name] = v
	}
	return form, true
}

func (c *Console) report(title, heading, msg string, err error) {
	if err != nil {
		c.printf("Error: %s\n", service.UserMessage(title, err))
		return
	}
	c.printf("%s: %s\n", heading, msg)
}

// prompt prints label and reads one line. Text fields keep inner spacing;
// only the line ending and surrounding blanks are dropped.
func (c *Console) prompt(label string) (string, bool) {
	c.printf("%s ", label)
	if !c.in.Scan() {
		c.printf("\n")
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func isQuit(s string) bool {
	s = strings.ToLower(s)
	return s == "q" || s == "quit" || s == "exit"
}
