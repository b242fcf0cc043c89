package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/ui/output"
	"go.trai.ch/purge/internal/ui/style"
	"go.trai.ch/zerr"
)

const labelWidth = 10

// RenderPlan writes a human-readable view of the site configuration and its pipeline.
func RenderPlan(w io.Writer, cfg *domain.SiteConfig) error {
	out := output.New(w)
	p := &planWriter{out: out}

	p.heading("Site")
	p.field("bucket", cfg.Bucket.Name)
	p.field("index", cfg.Bucket.IndexDocument)
	if cfg.Bucket.PublicAccessBlock.All() {
		p.field("access", p.color(style.Check+" public access blocked", style.Green))
	} else {
		p.field("access", p.color(style.Warning+" public access not fully blocked", style.Yellow))
	}
	dist := string(cfg.Distribution)
	if dist == "" {
		dist = p.color("bound at deploy time", style.Slate)
	}
	p.field("cdn", dist)

	p.blank()
	p.heading("Pipeline")
	stages := cfg.Stages()
	nameWidth := 0
	for _, s := range stages {
		nameWidth = max(nameWidth, len(s.Name))
	}
	for i, s := range stages {
		name := fmt.Sprintf("%-*s", nameWidth, s.Name)
		p.linef("  %d. %s  %s %s %s",
			i+1,
			out.String(name).Foreground(rgb(style.Iris)).Bold(),
			p.color(s.Action, style.Slate),
			style.Arrow,
			s.Detail,
		)
	}

	p.blank()
	p.heading("Resources")
	p.field("token", cfg.Source.Token.Name+"#"+cfg.Source.Token.JSONField)
	p.field("function", fmt.Sprintf("%s (%d MB)", cfg.Notifier.Name, cfg.Notifier.MemoryMB))

	if len(cfg.Notifications) > 0 {
		p.blank()
		p.heading("Notifications")
		for _, addr := range cfg.Notifications {
			p.linef("  %s %s", style.Dot, addr)
		}
	}

	if p.err != nil {
		return zerr.Wrap(p.err, "failed to render plan")
	}
	return nil
}

type planWriter struct {
	out *termenv.Output
	err error
}

func (p *planWriter) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *planWriter) blank() {
	p.linef("")
}

func (p *planWriter) heading(s string) {
	p.linef("%s", p.out.String(s).Bold())
}

func (p *planWriter) field(label, value string) {
	p.linef("  %-*s%s", labelWidth, label, value)
}

func (p *planWriter) color(s string, c lipgloss.Color) string {
	return p.out.String(s).Foreground(rgb(c)).String()
}

func rgb(c lipgloss.Color) termenv.Color {
	return termenv.RGBColor(string(c))
}
