package service

import (
	"strings"
	"time"

	"planline.app/api-server/common/optional"
	"planline.app/api-server/internal/model"
)

// dueDateLayout is the only accepted due-date input format.
const dueDateLayout = "2006-01-02"

// parseDueDate normalizes a raw due-date field. Absent stays absent; an
// explicit null or empty string becomes an explicit null (clear / unset); a
// value must strictly match YYYY-MM-DD and be a real calendar date.
func parseDueDate(field optional.Optional[string], name string) (optional.Optional[time.Time], error) {
	if field.Absent() {
		return optional.Optional[time.Time]{}, nil
	}
	raw, ok := field.Get()
	if !ok || raw == "" {
		return optional.Null[time.Time](), nil
	}

	parsed, err := time.Parse(dueDateLayout, raw)
	if err != nil {
		return optional.Optional[time.Time]{}, reject(KindInvalidFormat,
			"%s must be a valid date in YYYY-MM-DD format, got %q", name, raw)
	}
	return optional.Of(parsed.UTC()), nil
}

// parseProjectStatus validates a raw status against the closed set. Null and
// empty collapse to absent: status is not nullable, so "clear" means "leave
// the default alone".
func parseProjectStatus(field optional.Optional[string]) (optional.Optional[model.ProjectStatus], error) {
	if field.Absent() {
		return optional.Optional[model.ProjectStatus]{}, nil
	}
	raw, ok := field.Get()
	if !ok || raw == "" {
		return optional.Optional[model.ProjectStatus]{}, nil
	}

	status := model.ProjectStatus(raw)
	if !status.Valid() {
		return optional.Optional[model.ProjectStatus]{}, reject(KindInvalidEnum,
			"invalid project status %q, allowed values: %s", raw, joinProjectStatuses())
	}
	return optional.Of(status), nil
}

func parseTaskStatus(field optional.Optional[string]) (optional.Optional[model.TaskStatus], error) {
	if field.Absent() {
		return optional.Optional[model.TaskStatus]{}, nil
	}
	raw, ok := field.Get()
	if !ok || raw == "" {
		return optional.Optional[model.TaskStatus]{}, nil
	}

	status := model.TaskStatus(raw)
	if !status.Valid() {
		return optional.Optional[model.TaskStatus]{}, reject(KindInvalidEnum,
			"invalid task status %q, allowed values: %s", raw, joinTaskStatuses())
	}
	return optional.Of(status), nil
}

// normalizeContent enforces the comment content rule: non-empty after
// trimming. The trimmed form is what gets stored.
func normalizeContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", reject(KindEmptyContent, "comment content must not be empty")
	}
	return trimmed, nil
}

func joinProjectStatuses() string {
	values := make([]string, len(model.ProjectStatuses))
	for i, s := range model.ProjectStatuses {
		values[i] = string(s)
	}
	return strings.Join(values, ", ")
}

func joinTaskStatuses() string {
	values := make([]string, len(model.TaskStatuses))
	for i, s := range model.TaskStatuses {
		values[i] = string(s)
	}
	return strings.Join(values, ", ")
}
