package service

import (
	"path/filepath"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// fieldErrors accumulates validation messages per field, in the order the
// violations are found.
type fieldErrors map[string][]string

func (e fieldErrors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

func requireText(e fieldErrors, field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		e.add(field, msg)
	}
}

func requireEmail(e fieldErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		e.add(field, "Email is required")
		return
	}
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		e.add(field, "Enter a valid email address")
	}
}

// Résumé uploads are limited to the formats recruiters actually open.
var resumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

func validResumeExtension(filename string) bool {
	return resumeExtensions[strings.ToLower(filepath.Ext(filename))]
}
