package validate

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"event-calendar-api/internal/model"
)

var (
	timeRe  = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
	colorRe = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
)

// FieldError names the offending field and why it was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ParseDate accepts a full ISO-8601 timestamp or a bare calendar day.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

func CreateEvent(in model.CreateEventInput) []FieldError {
	var errs []FieldError
	if in.Title == "" {
		errs = append(errs, FieldError{"title", "Title is required"})
	} else if utf8.RuneCountInString(in.Title) > 200 {
		errs = append(errs, FieldError{"title", "Title cannot exceed 200 characters"})
	}
	if utf8.RuneCountInString(in.Description) > 1000 {
		errs = append(errs, FieldError{"description", "Description cannot exceed 1000 characters"})
	}
	if in.Date == "" {
		errs = append(errs, FieldError{"date", "Date is required"})
	} else if _, err := ParseDate(in.Date); err != nil {
		errs = append(errs, FieldError{"date", "Invalid date format"})
	}
	errs = append(errs, checkTime("startTime", in.StartTime)...)
	errs = append(errs, checkTime("endTime", in.EndTime)...)
	if in.CategoryID == "" {
		errs = append(errs, FieldError{"categoryId", "Category is required"})
	}
	if utf8.RuneCountInString(in.Location) > 200 {
		errs = append(errs, FieldError{"location", "Location cannot exceed 200 characters"})
	}
	errs = append(errs, checkColor("color", in.Color, false)...)
	return errs
}

// UpdateEvent applies the create rules only to fields present in the patch.
func UpdateEvent(in model.UpdateEventInput) []FieldError {
	var errs []FieldError
	if in.Title != nil {
		if *in.Title == "" {
			errs = append(errs, FieldError{"title", "Title cannot be empty"})
		} else if utf8.RuneCountInString(*in.Title) > 200 {
			errs = append(errs, FieldError{"title", "Title cannot exceed 200 characters"})
		}
	}
	if in.Description != nil && utf8.RuneCountInString(*in.Description) > 1000 {
		errs = append(errs, FieldError{"description", "Description cannot exceed 1000 characters"})
	}
	if in.Date != nil {
		if _, err := ParseDate(*in.Date); err != nil {
			errs = append(errs, FieldError{"date", "Invalid date format"})
		}
	}
	if in.StartTime != nil {
		errs = append(errs, checkTime("startTime", *in.StartTime)...)
	}
	if in.EndTime != nil {
		errs = append(errs, checkTime("endTime", *in.EndTime)...)
	}
	if in.CategoryID != nil && *in.CategoryID == "" {
		errs = append(errs, FieldError{"categoryId", "Category cannot be empty"})
	}
	if in.Location != nil && utf8.RuneCountInString(*in.Location) > 200 {
		errs = append(errs, FieldError{"location", "Location cannot exceed 200 characters"})
	}
	if in.Color != nil {
		errs = append(errs, checkColor("color", *in.Color, false)...)
	}
	return errs
}

func CreateCategory(in model.CreateCategoryInput) []FieldError {
	var errs []FieldError
	if in.Name == "" {
		errs = append(errs, FieldError{"name", "Name is required"})
	} else if utf8.RuneCountInString(in.Name) > 50 {
		errs = append(errs, FieldError{"name", "Name cannot exceed 50 characters"})
	}
	errs = append(errs, checkColor("color", in.Color, true)...)
	if utf8.RuneCountInString(in.Description) > 200 {
		errs = append(errs, FieldError{"description", "Description cannot exceed 200 characters"})
	}
	return errs
}

func UpdateCategory(in model.UpdateCategoryInput) []FieldError {
	var errs []FieldError
	if in.Name != nil {
		if *in.Name == "" {
			errs = append(errs, FieldError{"name", "Name cannot be empty"})
		} else if utf8.RuneCountInString(*in.Name) > 50 {
			errs = append(errs, FieldError{"name", "Name cannot exceed 50 characters"})
		}
	}
	if in.Color != nil {
		errs = append(errs, checkColor("color", *in.Color, true)...)
	}
	if in.Description != nil && utf8.RuneCountInString(*in.Description) > 200 {
		errs = append(errs, FieldError{"description", "Description cannot exceed 200 characters"})
	}
	return errs
}

func checkTime(field, v string) []FieldError {
	if v == "" {
		return nil
	}
	if !timeRe.MatchString(v) {
		return []FieldError{{field, "Invalid time format (HH:mm)"}}
	}
	return nil
}

func checkColor(field, v string, required bool) []FieldError {
	if v == "" {
		if required {
			return []FieldError{{field, "Color is required"}}
		}
		return nil
	}
	if !colorRe.MatchString(v) {
		return []FieldError{{field, "Invalid color format"}}
	}
	return nil
}
