package model

import "time"

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon,omitempty"`
	Description string    `json:"description,omitempty"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"startTime,omitempty"`
	EndTime     string    `json:"endTime,omitempty"`
	CategoryID  string    `json:"categoryId"`
	Location    string    `json:"location,omitempty"`
	Color       string    `json:"color,omitempty"`
	IsAllDay    bool      `json:"isAllDay"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateEventInput carries a client-supplied event. Date arrives as an
// ISO-8601 string and is parsed during validation.
type CreateEventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	CategoryID  string `json:"categoryId"`
	Location    string `json:"location"`
	Color       string `json:"color"`
	IsAllDay    bool   `json:"isAllDay"`
}

// UpdateEventInput is a partial patch. Pointer fields distinguish
// omitted from set-to-zero; nil fields leave the record untouched.
type UpdateEventInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	CategoryID  *string `json:"categoryId"`
	Location    *string `json:"location"`
	Color       *string `json:"color"`
	IsAllDay    *bool   `json:"isAllDay"`
}

type CreateCategoryInput struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
}

// EventFilter narrows ListEvents. Supplied predicates AND together;
// date bounds are inclusive and independently optional.
type EventFilter struct {
	CategoryID string
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
	Page       int
	Limit      int
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Response is the envelope every endpoint returns.
type Response struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}
