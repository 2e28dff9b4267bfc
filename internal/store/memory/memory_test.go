package memory_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/store"
	"planline.app/api-server/internal/store/memory"
)

var _ = Describe("Store", func() {
	var (
		ctx context.Context
		s   *memory.Store
	)

	BeforeEach(func() {
		ctx = context.Background()
		s = memory.New()
	})

	It("returns ErrNotFound for unknown ids", func() {
		_, err := s.Projects().GetByID(ctx, 1)
		Expect(err).To(MatchError(store.ErrNotFound))

		_, err = s.Users().GetByEmail(ctx, "nobody@example.test")
		Expect(err).To(MatchError(store.ErrNotFound))
	})

	It("stamps timestamps on create and update", func() {
		project := &model.Project{ID: 1, OrganizationID: 10, Name: "p", Status: model.ProjectActive}
		Expect(s.Projects().Create(ctx, project)).To(Succeed())
		Expect(project.CreatedAt).NotTo(BeZero())
		Expect(project.UpdatedAt).NotTo(BeZero())

		created := project.CreatedAt
		Expect(s.Projects().Update(ctx, project)).To(Succeed())
		Expect(project.CreatedAt).To(Equal(created))
	})

	It("hands out copies, not aliases", func() {
		project := &model.Project{ID: 1, OrganizationID: 10, Name: "original", Status: model.ProjectActive}
		Expect(s.Projects().Create(ctx, project)).To(Succeed())

		got, err := s.Projects().GetByID(ctx, 1)
		Expect(err).NotTo(HaveOccurred())
		got.Name = "mutated"

		again, err := s.Projects().GetByID(ctx, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(again.Name).To(Equal("original"))
	})

	It("lists by owner in insertion order", func() {
		for i, name := range []string{"first", "second", "third"} {
			project := &model.Project{ID: int64(i + 1), OrganizationID: 10, Name: name, Status: model.ProjectActive}
			Expect(s.Projects().Create(ctx, project)).To(Succeed())
		}
		other := &model.Project{ID: 99, OrganizationID: 20, Name: "other", Status: model.ProjectActive}
		Expect(s.Projects().Create(ctx, other)).To(Succeed())

		projects, err := s.Projects().ListByOrganization(ctx, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(projects).To(HaveLen(3))
		Expect(projects[0].Name).To(Equal("first"))
		Expect(projects[2].Name).To(Equal("third"))
	})

	It("scopes email lookups to one organization", func() {
		orgA, orgB := int64(10), int64(20)
		Expect(s.Users().Create(ctx, &model.User{ID: 1, Email: "x@a.test", OrganizationID: &orgA})).To(Succeed())

		_, err := s.Users().GetByEmailInOrganization(ctx, "x@a.test", orgA)
		Expect(err).NotTo(HaveOccurred())

		_, err = s.Users().GetByEmailInOrganization(ctx, "x@a.test", orgB)
		Expect(err).To(MatchError(store.ErrNotFound))
	})

	It("counts tasks per project and status", func() {
		Expect(s.Tasks().Create(ctx, &model.Task{ID: 1, ProjectID: 5, Title: "a", Status: model.TaskDone})).To(Succeed())
		Expect(s.Tasks().Create(ctx, &model.Task{ID: 2, ProjectID: 5, Title: "b", Status: model.TaskTodo})).To(Succeed())
		Expect(s.Tasks().Create(ctx, &model.Task{ID: 3, ProjectID: 6, Title: "c", Status: model.TaskDone})).To(Succeed())

		total, err := s.Tasks().CountByProject(ctx, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(Equal(int64(2)))

		done, err := s.Tasks().CountByProjectAndStatus(ctx, 5, model.TaskDone)
		Expect(err).NotTo(HaveOccurred())
		Expect(done).To(Equal(int64(1)))
	})

	It("runs WithTx against the same provider", func() {
		err := s.WithTx(ctx, func(stores store.Provider) error {
			return stores.Projects().Create(ctx, &model.Project{ID: 1, OrganizationID: 10, Name: "p", Status: model.ProjectActive})
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = s.Projects().GetByID(ctx, 1)
		Expect(err).NotTo(HaveOccurred())
	})
})
