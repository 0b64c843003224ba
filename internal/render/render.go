// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render builds the batch notification message from a set of
// pending leads.
package render

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"github.com/MKhiriev/go-lead-sync/models"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const timeLayout = "2006-01-02 15:04 MST"

// Renderer turns a batch of leads into a [models.Notification]. It is safe
// for concurrent use.
type Renderer struct {
	subject      string
	dashboardURL string
	location     *time.Location

	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewRenderer parses the embedded templates. subject is the prefix of every
// message subject; dashboardURL is linked from the body when non-empty.
// Timestamps are printed in loc, or UTC when loc is nil.
func NewRenderer(subject, dashboardURL string, loc *time.Location) (*Renderer, error) {
	if loc == nil {
		loc = time.UTC
	}

	html, err := htmltemplate.ParseFS(templatesFS, "templates/batch.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse html template: %w", err)
	}
	text, err := texttemplate.ParseFS(templatesFS, "templates/batch.txt.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse text template: %w", err)
	}

	return &Renderer{
		subject:      subject,
		dashboardURL: dashboardURL,
		location:     loc,
		html:         html,
		text:         text,
	}, nil
}

type leadView struct {
	ID        int64
	Name      string
	Mobile    string
	Email     string
	Message   string
	CreatedAt string
}

type batchView struct {
	Title        string
	Count        int
	DashboardURL string
	SentAt       string
	Leads        []leadView
}

// Render builds the message for leads, stamped with at.
func (r *Renderer) Render(leads []models.Lead, at time.Time) (models.Notification, error) {
	view := batchView{
		Title:        r.subject,
		Count:        len(leads),
		DashboardURL: r.dashboardURL,
		SentAt:       at.In(r.location).Format(timeLayout),
		Leads:        make([]leadView, 0, len(leads)),
	}

	ids := make([]int64, 0, len(leads))
	for _, l := range leads {
		ids = append(ids, l.ID)
		view.Leads = append(view.Leads, leadView{
			ID:        l.ID,
			Name:      l.Name,
			Mobile:    l.Mobile,
			Email:     deref(l.Email),
			Message:   deref(l.Message),
			CreatedAt: l.CreatedAt.In(r.location).Format(timeLayout),
		})
	}

	var html, text bytes.Buffer
	if err := r.html.Execute(&html, view); err != nil {
		return models.Notification{}, fmt.Errorf("render html body: %w", err)
	}
	if err := r.text.Execute(&text, view); err != nil {
		return models.Notification{}, fmt.Errorf("render text body: %w", err)
	}

	return models.Notification{
		Subject:  Subject(r.subject, len(leads)),
		HTMLBody: html.String(),
		TextBody: text.String(),
		LeadIDs:  ids,
	}, nil
}

// Subject formats the batch subject line, e.g. "New Leads (3 records)".
func Subject(prefix string, count int) string {
	return fmt.Sprintf("%s (%d records)", prefix, count)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
