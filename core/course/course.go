// Package course models the curriculum: numbered markdown lessons and the
// 10/15/20-day plans that sequence them.
package course

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

//go:embed content/*.md
var builtinContent embed.FS

// lessonNameRe matches lesson file names like "03-conditionals.md".
var lessonNameRe = regexp.MustCompile(`^(\d{2})-([a-z0-9-]+)\.md$`)

// Lesson is one course unit backed by a markdown file.
type Lesson struct {
	// Number orders lessons; it comes from the file name prefix.
	Number int
	// Slug is the file name without number and extension.
	Slug string
	// Title is the first level-one heading, or the slug if none.
	Title string
	// Body is the raw markdown.
	Body string
}

func titleOf(body, fallback string) string {
	for _, line := range strings.Split(body, "\n") {
		if rest, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return fallback
}

func parseLesson(name string, body []byte) (Lesson, bool) {
	m := lessonNameRe.FindStringSubmatch(name)
	if m == nil {
		return Lesson{}, false
	}
	number, _ := strconv.Atoi(m[1])
	slug := m[2]
	return Lesson{
		Number: number,
		Slug:   slug,
		Title:  titleOf(string(body), slug),
		Body:   string(body),
	}, true
}

// Builtin returns the embedded starter lessons.
func Builtin() []Lesson {
	entries, err := fs.ReadDir(builtinContent, "content")
	if err != nil {
		// The embedded tree is fixed at compile time.
		panic(err)
	}

	var out []Lesson
	for _, entry := range entries {
		body, err := fs.ReadFile(builtinContent, path.Join("content", entry.Name()))
		if err != nil {
			panic(err)
		}
		if lesson, ok := parseLesson(entry.Name(), body); ok {
			out = append(out, lesson)
		}
	}
	sortLessons(out)
	return out
}

// LoadDir reads lessons from a directory, falling back to the builtin set
// when the directory doesn't exist or holds no lessons. A workspace lesson
// with the same number replaces the builtin one.
func LoadDir(fsys afero.Fs, dir string) ([]Lesson, error) {
	byNumber := make(map[int]Lesson)
	for _, lesson := range Builtin() {
		byNumber[lesson.Number] = lesson
	}

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		// Missing dir is fine; the builtin course still works.
		return Builtin(), nil
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		body, err := afero.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading lesson %s: %w", entry.Name(), err)
		}
		if lesson, ok := parseLesson(entry.Name(), body); ok {
			byNumber[lesson.Number] = lesson
		}
	}

	out := make([]Lesson, 0, len(byNumber))
	for _, lesson := range byNumber {
		out = append(out, lesson)
	}
	sortLessons(out)
	return out, nil
}

// Find returns the lesson with the given number.
func Find(lessons []Lesson, number int) (Lesson, error) {
	for _, lesson := range lessons {
		if lesson.Number == number {
			return lesson, nil
		}
	}
	return Lesson{}, fmt.Errorf("no lesson %d, the course has %d lessons", number, len(lessons))
}

func sortLessons(lessons []Lesson) {
	sort.Slice(lessons, func(i, j int) bool { return lessons[i].Number < lessons[j].Number })
}
