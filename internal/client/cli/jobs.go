package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/careerbridge/careerbridge/internal/client/models"
	"github.com/careerbridge/careerbridge/internal/client/services"
)

// ListJobs prints the job feed.
func (a *App) ListJobs(ctx context.Context) {
	jobs, err := a.jobs.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load the job feed. Please try again.")
		return
	}
	if len(jobs) == 0 {
		fmt.Fprintln(a.out, "No jobs posted yet.")
		return
	}
	for _, j := range jobs {
		fmt.Fprintf(a.out, "[%s] %s — %s", j.ID, j.Title, j.Company)
		if j.Location != "" {
			fmt.Fprintf(a.out, " (%s)", j.Location)
		}
		fmt.Fprintln(a.out)
		if len(j.Tags) > 0 {
			fmt.Fprintf(a.out, "    %s\n", strings.Join(j.Tags, ", "))
		}
	}
}

// PostJob prompts a recruiter for a new posting and publishes it.
func (a *App) PostJob(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Job title", a.out)
	if err != nil {
		return err
	}
	company, err := getSimpleText(a.reader, "Company", a.out)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location", a.out)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Describe the role", a.out)
	if err != nil {
		return err
	}

	posted, err := a.jobs.Post(ctx, models.Job{
		Title:       title,
		Company:     company,
		Location:    location,
		Description: description,
	})
	if err != nil {
		if errors.Is(err, services.ErrRecruiterOnly) {
			fmt.Fprintln(a.out, "Only recruiter accounts can post jobs.")
			return nil
		}
		fmt.Fprintf(a.out, "Failed to post job: %v\n", err)
		return nil
	}
	fmt.Fprintf(a.out, "Posted job %s\n", posted.ID)
	return nil
}
