package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"
	"text/template"

	"explorewithme/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

var templateFuncs = map[string]any{
	"confirmed": func(s domain.RequestStatus) bool { return s == domain.RequestStatusConfirmed },
	"published": func(s domain.EventState) bool { return s == domain.EventStatePublished },
}

// notification holds the three parsed parts of one email: a subject line and
// the html and plain text bodies.
type notification struct {
	name    string
	subject *template.Template
	html    *htmltemplate.Template
	text    *template.Template
}

func parseNotification(name string) (*notification, error) {
	n := &notification{name: name}
	var err error
	if n.subject, err = template.New(name+"_subject.txt").Funcs(templateFuncs).ParseFS(templateFS, "templates/"+name+"_subject.txt"); err != nil {
		return nil, fmt.Errorf("parse %s subject: %w", name, err)
	}
	if n.html, err = htmltemplate.New(name+".html").Funcs(templateFuncs).ParseFS(templateFS, "templates/"+name+".html"); err != nil {
		return nil, fmt.Errorf("parse %s html: %w", name, err)
	}
	if n.text, err = template.New(name+".txt").Funcs(templateFuncs).ParseFS(templateFS, "templates/"+name+".txt"); err != nil {
		return nil, fmt.Errorf("parse %s text: %w", name, err)
	}
	return n, nil
}

type executor interface {
	Execute(w io.Writer, data any) error
}

func (n *notification) render(data any) (*domain.EmailContent, error) {
	parts := make([]string, 3)
	for i, t := range []executor{n.subject, n.html, n.text} {
		var buf bytes.Buffer
		if err := t.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("render %s: %w", n.name, err)
		}
		parts[i] = buf.String()
	}
	// Subjects are single-line headers.
	subject := strings.Join(strings.Fields(parts[0]), " ")
	return &domain.EmailContent{Subject: subject, HTML: parts[1], Text: parts[2]}, nil
}

type templateRenderer struct {
	requestStatus  *notification
	eventModerated *notification
}

// NewTemplateRenderer parses the embedded notification templates once.
func NewTemplateRenderer() (domain.EmailTemplateRenderer, error) {
	requestStatus, err := parseNotification("request_status")
	if err != nil {
		return nil, err
	}
	eventModerated, err := parseNotification("event_moderated")
	if err != nil {
		return nil, err
	}
	return &templateRenderer{requestStatus: requestStatus, eventModerated: eventModerated}, nil
}

func (r *templateRenderer) RenderRequestStatus(data *domain.RequestStatusEmailData) (*domain.EmailContent, error) {
	return r.requestStatus.render(data)
}

func (r *templateRenderer) RenderEventModerated(data *domain.EventModeratedEmailData) (*domain.EmailContent, error) {
	return r.eventModerated.render(data)
}
