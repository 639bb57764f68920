package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailContent is a rendered notification ready for a Mailer.
type EmailContent struct {
	Subject string
	HTML    string
	Text    string
}

// EmailTemplateRenderer renders the notifications sent by EmailService.
type EmailTemplateRenderer interface {
	RenderRequestStatus(data *RequestStatusEmailData) (*EmailContent, error)
	RenderEventModerated(data *EventModeratedEmailData) (*EmailContent, error)
}

// RequestStatusEmailData is sent to a requester after the owner moderated their request.
type RequestStatusEmailData struct {
	Email      string
	Name       string
	EventTitle string
	RequestID  int64
	Status     RequestStatus
}

// EventModeratedEmailData is sent to an initiator after an admin published or rejected their event.
type EventModeratedEmailData struct {
	Email      string
	Name       string
	EventID    int64
	EventTitle string
	State      EventState
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRequestStatus(ctx context.Context, data *RequestStatusEmailData) error
	SendEventModerated(ctx context.Context, data *EventModeratedEmailData) error
}
