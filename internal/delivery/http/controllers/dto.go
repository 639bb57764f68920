package controllers

import (
	"time"

	"explorewithme/internal/domain"
)

// CategoryDto is the wire form of a category.
// swagger:model CategoryDto
type CategoryDto struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserDto is the wire form of a user.
// swagger:model UserDto
type UserDto struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserShortDto is the public view of a user.
type UserShortDto struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LocationDto is a pair of coordinates.
type LocationDto struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// EventFullDto is the detailed view of an event.
// swagger:model EventFullDto
type EventFullDto struct {
	ID                int64        `json:"id"`
	Annotation        string       `json:"annotation"`
	Category          CategoryDto  `json:"category"`
	ConfirmedRequests int          `json:"confirmedRequests"`
	CreatedOn         string       `json:"createdOn"`
	Description       string       `json:"description"`
	EventDate         string       `json:"eventDate"`
	Initiator         UserShortDto `json:"initiator"`
	Location          LocationDto  `json:"location"`
	Paid              bool         `json:"paid"`
	ParticipantLimit  int          `json:"participantLimit"`
	PublishedOn       *string      `json:"publishedOn"`
	RequestModeration bool         `json:"requestModeration"`
	State             string       `json:"state"`
	Title             string       `json:"title"`
	Views             int64        `json:"views"`
}

// EventShortDto is the list view of an event.
// swagger:model EventShortDto
type EventShortDto struct {
	ID                int64        `json:"id"`
	Annotation        string       `json:"annotation"`
	Category          CategoryDto  `json:"category"`
	ConfirmedRequests int          `json:"confirmedRequests"`
	EventDate         string       `json:"eventDate"`
	Initiator         UserShortDto `json:"initiator"`
	Paid              bool         `json:"paid"`
	Title             string       `json:"title"`
	Views             int64        `json:"views"`
}

// ParticipationRequestDto is the wire form of a participation request.
// swagger:model ParticipationRequestDto
type ParticipationRequestDto struct {
	ID        int64  `json:"id"`
	Created   string `json:"created"`
	Event     int64  `json:"event"`
	Requester int64  `json:"requester"`
	Status    string `json:"status"`
}

// EventRequestStatusUpdateResult lists the requests changed by a batch moderation.
// swagger:model EventRequestStatusUpdateResult
type EventRequestStatusUpdateResult struct {
	ConfirmedRequests []ParticipationRequestDto `json:"confirmedRequests"`
	RejectedRequests  []ParticipationRequestDto `json:"rejectedRequests"`
}

// CommentDto is the wire form of a comment with its replies.
// swagger:model CommentDto
type CommentDto struct {
	ID            int64        `json:"id"`
	Text          string       `json:"text"`
	EventID       int64        `json:"eventId"`
	Author        UserShortDto `json:"author"`
	ParentComment *int64       `json:"parentComment"`
	Created       string       `json:"created"`
	Updated       *string      `json:"updated"`
	Replies       []CommentDto `json:"replies"`
}

// CompilationDto is the wire form of a compilation.
// swagger:model CompilationDto
type CompilationDto struct {
	ID     int64           `json:"id"`
	Title  string          `json:"title"`
	Pinned bool            `json:"pinned"`
	Events []EventShortDto `json:"events"`
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := domain.FormatDateTime(*t)
	return &s
}

func toCategoryDto(c *domain.Category) CategoryDto {
	return CategoryDto{ID: c.ID, Name: c.Name}
}

func toUserDto(u *domain.User) UserDto {
	return UserDto{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toUserShortDto(u domain.UserShort) UserShortDto {
	return UserShortDto{ID: u.ID, Name: u.Name}
}

func toEventFullDto(e *domain.Event) EventFullDto {
	return EventFullDto{
		ID:                e.ID,
		Annotation:        e.Annotation,
		Category:          toCategoryDto(&e.Category),
		ConfirmedRequests: e.ConfirmedRequests,
		CreatedOn:         domain.FormatDateTime(e.CreatedOn),
		Description:       e.Description,
		EventDate:         domain.FormatDateTime(e.EventDate),
		Initiator:         toUserShortDto(e.Initiator),
		Location:          LocationDto{Lat: e.Location.Lat, Lon: e.Location.Lon},
		Paid:              e.Paid,
		ParticipantLimit:  e.ParticipantLimit,
		PublishedOn:       formatOptional(e.PublishedOn),
		RequestModeration: e.RequestModeration,
		State:             string(e.State),
		Title:             e.Title,
		Views:             e.Views,
	}
}

func toEventShortDto(e *domain.Event) EventShortDto {
	return EventShortDto{
		ID:                e.ID,
		Annotation:        e.Annotation,
		Category:          toCategoryDto(&e.Category),
		ConfirmedRequests: e.ConfirmedRequests,
		EventDate:         domain.FormatDateTime(e.EventDate),
		Initiator:         toUserShortDto(e.Initiator),
		Paid:              e.Paid,
		Title:             e.Title,
		Views:             e.Views,
	}
}

func toEventFullDtos(events []*domain.Event) []EventFullDto {
	out := make([]EventFullDto, len(events))
	for i, e := range events {
		out[i] = toEventFullDto(e)
	}
	return out
}

func toEventShortDtos(events []*domain.Event) []EventShortDto {
	out := make([]EventShortDto, len(events))
	for i, e := range events {
		out[i] = toEventShortDto(e)
	}
	return out
}

func toRequestDto(r *domain.ParticipationRequest) ParticipationRequestDto {
	return ParticipationRequestDto{
		ID:        r.ID,
		Created:   domain.FormatDateTime(r.Created),
		Event:     r.EventID,
		Requester: r.RequesterID,
		Status:    string(r.Status),
	}
}

func toRequestDtos(reqs []*domain.ParticipationRequest) []ParticipationRequestDto {
	out := make([]ParticipationRequestDto, len(reqs))
	for i, r := range reqs {
		out[i] = toRequestDto(r)
	}
	return out
}

func toCommentDto(c *domain.Comment) CommentDto {
	dto := CommentDto{
		ID:            c.ID,
		Text:          c.Text,
		EventID:       c.EventID,
		Author:        toUserShortDto(c.Author),
		ParentComment: c.ParentID,
		Created:       domain.FormatDateTime(c.Created),
		Updated:       formatOptional(c.Updated),
		Replies:       make([]CommentDto, len(c.Replies)),
	}
	for i, r := range c.Replies {
		dto.Replies[i] = toCommentDto(r)
	}
	return dto
}

func toCommentDtos(comments []*domain.Comment) []CommentDto {
	out := make([]CommentDto, len(comments))
	for i, c := range comments {
		out[i] = toCommentDto(c)
	}
	return out
}

func toCompilationDto(c *domain.Compilation) CompilationDto {
	return CompilationDto{ID: c.ID, Title: c.Title, Pinned: c.Pinned, Events: toEventShortDtos(c.Events)}
}
