package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
	"github.com/narwhalmedia/tracker/internal/catalog/repository"
	pkgerrors "github.com/narwhalmedia/tracker/pkg/errors"
	"github.com/narwhalmedia/tracker/test/testutil"
)

// MediaStoreSuite is the behaviour every MediaStore backend must share.
type MediaStoreSuite struct {
	suite.Suite
	ctx      context.Context
	newStore func(t *testing.T) repository.MediaStore
	store    repository.MediaStore
}

func (s *MediaStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore(s.T())
}

func (s *MediaStoreSuite) TearDownTest() {
	if s.store != nil {
		s.Require().NoError(s.store.Close())
	}
}

func (s *MediaStoreSuite) TestCreateAssignsID() {
	item := testutil.CreateTestMediaItem("Dune", domain.MediaTypeBook, 0)
	item.ID = uuid.Nil

	s.Require().NoError(s.store.Create(s.ctx, item))
	s.NotEqual(uuid.Nil, item.ID)

	got, err := s.store.Get(s.ctx, item.ID)
	s.Require().NoError(err)
	s.Equal(item.ID, got.ID)
	s.Equal("Dune", got.Title)
	s.Equal(domain.MediaTypeBook, got.Type)
	s.Equal(domain.StatusToDo, got.Status)
	s.True(item.CreatedAt.Equal(got.CreatedAt))
}

func (s *MediaStoreSuite) TestCreateKeepsIDsUnique() {
	a := testutil.CreateTestMediaItem("A", domain.MediaTypeMovie, 0)
	b := testutil.CreateTestMediaItem("B", domain.MediaTypeMovie, time.Second)
	a.ID, b.ID = uuid.Nil, uuid.Nil

	s.Require().NoError(s.store.Create(s.ctx, a))
	s.Require().NoError(s.store.Create(s.ctx, b))
	s.NotEqual(a.ID, b.ID)
}

func (s *MediaStoreSuite) TestCreateDuplicateIDIsStoreError() {
	item := testutil.CreateTestMediaItem("Dune", domain.MediaTypeBook, 0)
	s.Require().NoError(s.store.Create(s.ctx, item))

	dup := testutil.CreateTestMediaItem("Dune Messiah", domain.MediaTypeBook, time.Second)
	dup.ID = item.ID
	err := s.store.Create(s.ctx, dup)
	s.Require().Error(err)
	s.True(pkgerrors.IsStore(err), err)
	s.False(pkgerrors.IsValidation(err))

	got, err := s.store.Get(s.ctx, item.ID)
	s.Require().NoError(err)
	s.Equal("Dune", got.Title)
}

func (s *MediaStoreSuite) TestListNewestFirst() {
	// insert out of chronological order
	items := testutil.SampleCatalog()
	for _, i := range []int{2, 0, 3, 1} {
		s.Require().NoError(s.store.Create(s.ctx, items[i]))
	}

	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 4)

	want := []string{"Hades", "Superman Returns", "Dune", "Batman Begins"}
	for i, item := range list {
		s.Equal(want[i], item.Title)
	}
}

func (s *MediaStoreSuite) TestListEmpty() {
	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.NotNil(list)
	s.Empty(list)
}

func (s *MediaStoreSuite) TestUpdate() {
	item := testutil.CreateTestMediaItem("Dune", domain.MediaTypeBook, 0)
	s.Require().NoError(s.store.Create(s.ctx, item))

	item.Status = domain.StatusInProgress
	item.Progress = 40
	item.Rating = 0
	item.UpdatedAt = item.UpdatedAt.Add(time.Minute)
	s.Require().NoError(s.store.Update(s.ctx, item))

	got, err := s.store.Get(s.ctx, item.ID)
	s.Require().NoError(err)
	s.Equal(domain.StatusInProgress, got.Status)
	s.Equal(40.0, got.Progress)
	s.True(item.UpdatedAt.Equal(got.UpdatedAt))
	s.True(item.CreatedAt.Equal(got.CreatedAt))
}

func (s *MediaStoreSuite) TestUpdateUnknownDoesNotInsert() {
	ghost := testutil.CreateTestMediaItem("Ghost", domain.MediaTypeGame, 0)

	err := s.store.Update(s.ctx, ghost)
	s.True(pkgerrors.IsNotFound(err))

	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *MediaStoreSuite) TestDelete() {
	keep := testutil.CreateTestMediaItem("Keep", domain.MediaTypeMovie, 0)
	drop := testutil.CreateTestMediaItem("Drop", domain.MediaTypeMovie, time.Second)
	s.Require().NoError(s.store.Create(s.ctx, keep))
	s.Require().NoError(s.store.Create(s.ctx, drop))

	s.Require().NoError(s.store.Delete(s.ctx, drop.ID))

	_, err := s.store.Get(s.ctx, drop.ID)
	s.True(pkgerrors.IsNotFound(err))

	err = s.store.Delete(s.ctx, uuid.New())
	s.True(pkgerrors.IsNotFound(err))

	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("Keep", list[0].Title)
}

func (s *MediaStoreSuite) TestGetUnknown() {
	_, err := s.store.Get(s.ctx, uuid.New())
	s.ErrorIs(err, domain.ErrMediaNotFound)
}

func (s *MediaStoreSuite) TestPing() {
	s.NoError(s.store.Ping(s.ctx))
}
