package main

import (
	"fmt"

	"github.com/dshills/tuikit/internal/app"
	"github.com/dshills/tuikit/internal/ui"
)

const divider = "------------------------------"

type record struct {
	first string
	last  string
}

// form holds the demo's widget IDs and state. IDs are generated once at
// setup; the build method re-declares the interface from this state every
// frame.
type form struct {
	application *app.Application

	hideBox    ui.ID
	firstField ui.ID
	lastField  ui.ID
	submitBtn  ui.ID
	clearBtn   ui.ID
	quitBtn    ui.ID

	hideDatabase bool
	first        string
	last         string
	database     []record
}

func newForm(application *app.Application) *form {
	gen := ui.NewGenerator()
	return &form{
		application: application,
		hideBox:     gen.Next(),
		firstField:  gen.Next(),
		lastField:   gen.Next(),
		submitBtn:   gen.Next(),
		clearBtn:    gen.Next(),
		quitBtn:     gen.Next(),
	}
}

func (f *form) build(ctx *ui.Context) {
	ctx.Checkbox(f.hideBox, "Hide Database", &f.hideDatabase)

	if !f.hideDatabase {
		ctx.Label(divider)
		for _, r := range f.database {
			ctx.Label(fmt.Sprintf("%s %s", r.first, r.last))
		}
		ctx.Label(divider)
	}

	ctx.BeginLayout(ui.Horizontal, 1)
	ctx.Label("First name:")
	ctx.EditField(f.firstField, &f.first)
	ctx.EndLayout()

	ctx.BeginLayout(ui.Horizontal, 1)
	ctx.Label(" Last name:")
	ctx.EditField(f.lastField, &f.last)
	ctx.EndLayout()

	ctx.BeginLayout(ui.Horizontal, 1)
	if ctx.Button(f.submitBtn, "Submit") {
		f.submit()
	}
	if ctx.Button(f.clearBtn, "Clear") {
		f.first, f.last = "", ""
	}
	if ctx.Button(f.quitBtn, "Quit") {
		f.application.Quit()
	}
	ctx.EndLayout()
}

func (f *form) submit() {
	if f.first == "" && f.last == "" {
		return
	}
	f.database = append(f.database, record{first: f.first, last: f.last})
	f.first, f.last = "", ""
}
