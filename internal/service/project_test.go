package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"planline.app/api-server/common/optional"
	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/service"
)

var _ = Describe("ProjectService", func() {
	var (
		ctx context.Context
		f   *fixture
	)

	BeforeEach(func() {
		ctx = context.Background()
		f = newFixture()
	})

	Describe("Create", func() {
		It("creates a project with defaults", func() {
			project, err := f.projects.Create(ctx, f.alice, service.CreateProjectInput{
				Name: "  Q3 Rollout  ",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(project.Name).To(Equal("Q3 Rollout"))
			Expect(project.Status).To(Equal(model.ProjectActive))
			Expect(project.DueDate).To(BeNil())
			Expect(project.OrganizationID).To(Equal(f.orgA.ID))
		})

		It("round-trips a calendar due date", func() {
			project, err := f.projects.Create(ctx, f.alice, service.CreateProjectInput{
				Name:    "Launch",
				DueDate: optional.Of("2024-02-29"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(project.DueDate).NotTo(BeNil())
			Expect(project.DueDate.Format("2006-01-02")).To(Equal("2024-02-29"))

			got, err := f.projects.Get(ctx, f.alice, project.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.DueDate).NotTo(BeNil())
			Expect(got.DueDate.Equal(*project.DueDate)).To(BeTrue())
		})

		It("rejects an impossible calendar date and stores nothing", func() {
			_, err := f.projects.Create(ctx, f.alice, service.CreateProjectInput{
				Name:    "Launch",
				DueDate: optional.Of("2024-02-30"),
			})
			expectRejection(err, service.KindInvalidFormat)

			projects, err := f.projects.List(ctx, f.alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(projects).To(BeEmpty())
		})

		It("rejects a date that is not in YYYY-MM-DD form", func() {
			_, err := f.projects.Create(ctx, f.alice, service.CreateProjectInput{
				Name:    "Launch",
				DueDate: optional.Of("29/02/2024"),
			})
			rej := expectRejection(err, service.KindInvalidFormat)
			Expect(rej.Message).To(ContainSubstring("YYYY-MM-DD"))
		})

		It("rejects a task status on a project and names the allowed set", func() {
			_, err := f.projects.Create(ctx, f.alice, service.CreateProjectInput{
				Name:   "Launch",
				Status: optional.Of("DONE"),
			})
			rej := expectRejection(err, service.KindInvalidEnum)
			Expect(rej.Message).To(ContainSubstring("ACTIVE, ON_HOLD, COMPLETED"))
		})

		It("rejects a blank name", func() {
			_, err := f.projects.Create(ctx, f.alice, service.CreateProjectInput{Name: "   "})
			expectRejection(err, service.KindInvalidFormat)
		})

		It("rejects an unauthenticated actor", func() {
			_, err := f.projects.Create(ctx, nil, service.CreateProjectInput{Name: "Launch"})
			expectRejection(err, service.KindUnauthenticated)
		})
	})

	Describe("List", func() {
		It("only returns the actor's organization's projects", func() {
			mine := seedProject(f.stores, f.orgA.ID, "Mine")
			seedProject(f.stores, f.orgB.ID, "Theirs")

			projects, err := f.projects.List(ctx, f.alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(projects).To(HaveLen(1))
			Expect(projects[0].ID).To(Equal(mine.ID))
		})
	})

	Describe("Get", func() {
		It("hides cross-tenant projects behind not-found", func() {
			project := seedProject(f.stores, f.orgA.ID, "Mine")

			_, err := f.projects.Get(ctx, f.bob, project.ID)
			expectRejection(err, service.KindNotFound)
		})
	})

	Describe("Stats", func() {
		It("reports a completion rate of 0 for an empty project", func() {
			project := seedProject(f.stores, f.orgA.ID, "Empty")

			stats, err := f.projects.Stats(ctx, f.alice, project.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalTasks).To(BeZero())
			Expect(stats.CompletedTasks).To(BeZero())
			Expect(stats.CompletionRate).To(BeZero())
		})

		It("computes the done ratio as a percentage", func() {
			project := seedProject(f.stores, f.orgA.ID, "Busy")
			seedTask(f.stores, project.ID, "a", model.TaskDone)
			seedTask(f.stores, project.ID, "b", model.TaskTodo)
			seedTask(f.stores, project.ID, "c", model.TaskInProgress)
			seedTask(f.stores, project.ID, "d", model.TaskTodo)

			stats, err := f.projects.Stats(ctx, f.alice, project.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalTasks).To(Equal(int64(4)))
			Expect(stats.CompletedTasks).To(Equal(int64(1)))
			Expect(stats.CompletionRate).To(BeNumerically("~", 25.0))
		})

		It("refuses stats for another tenant's project", func() {
			project := seedProject(f.stores, f.orgA.ID, "Busy")

			_, err := f.projects.Stats(ctx, f.bob, project.ID)
			expectRejection(err, service.KindNotFound)
		})
	})

	Describe("Update", func() {
		var project *model.Project

		BeforeEach(func() {
			var err error
			project, err = f.projects.Create(ctx, f.alice, service.CreateProjectInput{
				Name:        "Launch",
				Description: optional.Of("initial description"),
				DueDate:     optional.Of("2024-06-01"),
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("leaves absent fields untouched", func() {
			updated, err := f.projects.Update(ctx, f.alice, project.ID, service.ProjectPatch{
				Name: optional.Of("Launch v2"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Launch v2"))
			Expect(updated.Description).To(Equal("initial description"))
			Expect(updated.DueDate).NotTo(BeNil())
		})

		It("clears the description when given an empty string", func() {
			updated, err := f.projects.Update(ctx, f.alice, project.ID, service.ProjectPatch{
				Description: optional.Of(""),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Description).To(BeEmpty())
			Expect(updated.Name).To(Equal("Launch"))
		})

		It("clears the due date on explicit null", func() {
			updated, err := f.projects.Update(ctx, f.alice, project.ID, service.ProjectPatch{
				DueDate: optional.Null[string](),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.DueDate).To(BeNil())
		})

		It("moves the project through the status set", func() {
			updated, err := f.projects.Update(ctx, f.alice, project.ID, service.ProjectPatch{
				Status: optional.Of("COMPLETED"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(model.ProjectCompleted))
		})

		It("rejects an invalid status without modifying the project", func() {
			_, err := f.projects.Update(ctx, f.alice, project.ID, service.ProjectPatch{
				Status: optional.Of("PAUSED"),
			})
			expectRejection(err, service.KindInvalidEnum)

			got, err := f.projects.Get(ctx, f.alice, project.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Status).To(Equal(model.ProjectActive))
		})

		It("hides cross-tenant updates behind not-found", func() {
			_, err := f.projects.Update(ctx, f.bob, project.ID, service.ProjectPatch{
				Name: optional.Of("hijacked"),
			})
			expectRejection(err, service.KindNotFound)

			got, err := f.projects.Get(ctx, f.alice, project.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("Launch"))
		})

		It("applies an empty patch as a no-op", func() {
			updated, err := f.projects.Update(ctx, f.alice, project.ID, service.ProjectPatch{})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Launch"))
			Expect(updated.Description).To(Equal("initial description"))
		})
	})
})
