package controller

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/campusnotes/notes-client/internal/render"
)

// LoadFilterVocab fetches the three filter enumerations concurrently and
// paints the selection controls. Failures are logged, never surfaced; a
// missing vocabulary leaves its control empty and the app keeps working.
func (c *Controller) LoadFilterVocab(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadFilterVocab(ctx)
}

func (c *Controller) loadFilterVocab(ctx context.Context) {
	type vocab struct {
		values []string
		err    error
	}
	var subjects, courses, semesters vocab

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		subjects.values, subjects.err = c.backend.Subjects(ctx)
	}()
	go func() {
		defer wg.Done()
		courses.values, courses.err = c.backend.Courses(ctx)
	}()
	go func() {
		defer wg.Done()
		semesters.values, semesters.err = c.backend.Semesters(ctx)
	}()
	wg.Wait()

	paint := func(container string, v vocab) {
		if v.err != nil {
			c.log.Warn("filter_vocab_failed", zap.String("container", container), zap.Error(v.err))
			return
		}
		c.surface.Paint(container, render.Options(v.values))
	}

	paint(render.ContainerSubjectFilter, subjects)
	paint(render.ContainerCourseFilter, courses)
	paint(render.ContainerSemesterFilter, semesters)
}
