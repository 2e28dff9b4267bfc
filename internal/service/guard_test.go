package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/service"
)

var _ = Describe("Guard", func() {
	var (
		ctx   context.Context
		f     *fixture
		guard *service.Guard
	)

	BeforeEach(func() {
		ctx = context.Background()
		f = newFixture()
		guard = service.NewGuard(f.stores)
	})

	Describe("Authenticate", func() {
		It("rejects a missing actor", func() {
			_, err := guard.Authenticate(nil)
			expectRejection(err, service.KindUnauthenticated)
		})

		It("rejects an inactive actor", func() {
			inactive := *f.alice
			inactive.IsActive = false
			_, err := guard.Authenticate(&inactive)
			expectRejection(err, service.KindUnauthenticated)
		})

		It("rejects an actor without an organization", func() {
			unassigned := model.ActorForUser(seedUser(f.stores, "drifter@nowhere.test", nil))
			_, err := guard.Authenticate(unassigned)
			expectRejection(err, service.KindUnauthenticated)
		})

		It("returns the actor's organization", func() {
			orgID, err := guard.Authenticate(f.alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(orgID).To(Equal(f.orgA.ID))
		})
	})

	Describe("Project", func() {
		It("returns a project in the actor's organization", func() {
			project := seedProject(f.stores, f.orgA.ID, "Rollout")

			got, err := guard.Project(ctx, f.alice, project.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(project.ID))
		})

		It("makes a cross-tenant project indistinguishable from a missing one", func() {
			project := seedProject(f.stores, f.orgA.ID, "Rollout")

			_, crossErr := guard.Project(ctx, f.bob, project.ID)
			_, missingErr := guard.Project(ctx, f.bob, 424242)

			crossRej := expectRejection(crossErr, service.KindNotFound)
			missingRej := expectRejection(missingErr, service.KindNotFound)
			Expect(crossRej.Message).To(Equal(missingRej.Message))
		})
	})

	Describe("Task", func() {
		It("authorizes through the task's project", func() {
			project := seedProject(f.stores, f.orgA.ID, "Rollout")
			task := seedTask(f.stores, project.ID, "Ship it", model.TaskTodo)

			got, err := guard.Task(ctx, f.alice, task.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(task.ID))

			_, err = guard.Task(ctx, f.bob, task.ID)
			expectRejection(err, service.KindNotFound)
		})
	})

	Describe("Comment", func() {
		It("authorizes through the comment's task and project", func() {
			project := seedProject(f.stores, f.orgA.ID, "Rollout")
			task := seedTask(f.stores, project.ID, "Ship it", model.TaskTodo)
			comment := seedComment(f.stores, task.ID, &f.alice.ID, "looks good")

			got, err := guard.Comment(ctx, f.alice, comment.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(comment.ID))

			_, err = guard.Comment(ctx, f.bob, comment.ID)
			expectRejection(err, service.KindNotFound)
		})
	})
})
