package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/service"
)

var _ = Describe("AuthService", func() {
	var (
		ctx  context.Context
		f    *fixture
		auth service.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		f = newFixture()
		auth = service.NewAuthService(f.stores.Users(), "test-secret", time.Hour)
	})

	It("round-trips a token into the issuing user's actor", func() {
		user, err := f.stores.Users().GetByID(ctx, f.alice.ID)
		Expect(err).NotTo(HaveOccurred())

		token, err := auth.IssueToken(user)
		Expect(err).NotTo(HaveOccurred())
		Expect(token).NotTo(BeEmpty())

		actor, err := auth.ResolveActor(ctx, token)
		Expect(err).NotTo(HaveOccurred())
		Expect(actor.ID).To(Equal(f.alice.ID))
		Expect(actor.OrganizationID).NotTo(BeNil())
		Expect(*actor.OrganizationID).To(Equal(f.orgA.ID))
	})

	It("refuses a garbage credential", func() {
		_, err := auth.ResolveActor(ctx, "not-a-token")
		Expect(err).To(MatchError(service.ErrUnauthenticated))
	})

	It("refuses a token signed with another secret", func() {
		other := service.NewAuthService(f.stores.Users(), "other-secret", time.Hour)
		user, err := f.stores.Users().GetByID(ctx, f.alice.ID)
		Expect(err).NotTo(HaveOccurred())

		token, err := other.IssueToken(user)
		Expect(err).NotTo(HaveOccurred())

		_, err = auth.ResolveActor(ctx, token)
		Expect(err).To(MatchError(service.ErrUnauthenticated))
	})

	It("refuses an expired token", func() {
		shortLived := service.NewAuthService(f.stores.Users(), "test-secret", -time.Minute)
		user, err := f.stores.Users().GetByID(ctx, f.alice.ID)
		Expect(err).NotTo(HaveOccurred())

		token, err := shortLived.IssueToken(user)
		Expect(err).NotTo(HaveOccurred())

		_, err = auth.ResolveActor(ctx, token)
		Expect(err).To(MatchError(service.ErrUnauthenticated))
	})

	It("refuses a token naming an unknown user", func() {
		ghost := &model.User{ID: 424242, Email: "ghost@org-a.test"}
		token, err := auth.IssueToken(ghost)
		Expect(err).NotTo(HaveOccurred())

		_, err = auth.ResolveActor(ctx, token)
		Expect(err).To(MatchError(service.ErrUnauthenticated))
	})

	It("reflects the stored state, not the token's", func() {
		user, err := f.stores.Users().GetByID(ctx, f.alice.ID)
		Expect(err).NotTo(HaveOccurred())
		token, err := auth.IssueToken(user)
		Expect(err).NotTo(HaveOccurred())

		user.IsActive = false
		Expect(f.stores.Users().Update(ctx, user)).To(Succeed())

		actor, err := auth.ResolveActor(ctx, token)
		Expect(err).NotTo(HaveOccurred())
		Expect(actor.IsActive).To(BeFalse())
	})
})
