package cli_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
	"github.com/narwhalmedia/tracker/internal/catalog/handler"
	"github.com/narwhalmedia/tracker/internal/catalog/repository"
	"github.com/narwhalmedia/tracker/internal/catalog/service"
	"github.com/narwhalmedia/tracker/internal/cli"
	"github.com/narwhalmedia/tracker/pkg/config"
	"github.com/narwhalmedia/tracker/pkg/events"
	"github.com/narwhalmedia/tracker/pkg/logger"
)

type stubProvider struct{}

func (stubProvider) SearchMovies(ctx context.Context, query string) ([]domain.Candidate, error) {
	if query == "nothing" {
		return nil, nil
	}
	return []domain.Candidate{
		{Title: "Dune: Part Two", PosterURL: "https://image.tmdb.org/t/p/w500/p.jpg", AverageRating: 8.46, ReleaseYear: 2024},
		{Title: "Dune", PosterURL: "", AverageRating: 7.8, ReleaseYear: 2021},
	}, nil
}

type CLITestSuite struct {
	suite.Suite
	srv   *httptest.Server
	store repository.MediaStore
	bus   *events.InMemoryEventBus
}

func (s *CLITestSuite) SetupTest() {
	log := logger.NewNoop()
	store, err := repository.Open(config.DatabaseConfig{Driver: config.DriverSQLite, DSN: ":memory:"}, log)
	s.Require().NoError(err)
	s.store = store
	s.bus = events.NewInMemoryEventBus(log)

	media := service.NewMediaService(store, s.bus, nil, log)
	lookup := service.NewLookupService(stubProvider{}, nil, 0, log)
	s.srv = httptest.NewServer(handler.NewRouter(handler.NewMediaHandler(media, lookup, log), handler.RouterConfig{}, log))
}

func (s *CLITestSuite) TearDownTest() {
	s.srv.Close()
	s.bus.Drain()
	_ = s.store.Close()
}

func (s *CLITestSuite) run(args ...string) (string, error) {
	cmd := cli.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--api", s.srv.URL}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (s *CLITestSuite) items() []domain.MediaItem {
	items, err := s.store.List(context.Background())
	s.Require().NoError(err)
	return items
}

func (s *CLITestSuite) TestListEmpty() {
	out, err := s.run("list")
	s.Require().NoError(err)
	s.Contains(out, "empty")
}

func (s *CLITestSuite) TestAddAndListWithFilters() {
	_, err := s.run("add", "--title", "Batman Begins", "--type", "Movie")
	s.Require().NoError(err)
	_, err = s.run("add", "--title", "Dune", "--type", "Book", "--status", "In Progress", "--progress", "40")
	s.Require().NoError(err)

	out, err := s.run("list")
	s.Require().NoError(err)
	s.Less(strings.Index(out, "Dune"), strings.Index(out, "Batman Begins"), "newest first")

	out, err = s.run("list", "--search", "BAT")
	s.Require().NoError(err)
	s.Contains(out, "Batman Begins")
	s.NotContains(out, "Dune")

	out, err = s.run("list", "--category", "Book")
	s.Require().NoError(err)
	s.Contains(out, "Dune")
	s.NotContains(out, "Batman")

	out, err = s.run("list", "--category", "Game")
	s.Require().NoError(err)
	s.Contains(out, "No media matches")

	_, err = s.run("list", "--category", "Show")
	s.Error(err)
}

func (s *CLITestSuite) TestAddValidationError() {
	_, err := s.run("add", "--type", "Movie")
	s.Require().Error(err)
	s.Contains(err.Error(), "title")
	s.Empty(s.items())
}

func (s *CLITestSuite) TestAddWithLookup() {
	out, err := s.run("add", "--lookup", "dune", "--status", "In Progress", "--progress", "40")
	s.Require().NoError(err, out)

	items := s.items()
	s.Require().Len(items, 1)
	got := items[0]
	s.Equal("Dune: Part Two", got.Title)
	s.Equal(domain.MediaTypeMovie, got.Type)
	s.Equal(8.5, got.Rating)
	s.Equal("https://image.tmdb.org/t/p/w500/p.jpg", got.ImageURL)
	s.Equal(domain.StatusInProgress, got.Status)
	s.Equal(40.0, got.Progress)
}

func (s *CLITestSuite) TestAddWithLookupNoResults() {
	out, err := s.run("add", "--lookup", "nothing", "--title", "Obscure", "--type", "Movie")
	s.Require().NoError(err)
	s.Contains(out, "No results found")
	s.Len(s.items(), 1)
}

func (s *CLITestSuite) TestEditAndDelete() {
	_, err := s.run("add", "--title", "Hades", "--type", "Game")
	s.Require().NoError(err)
	id := s.items()[0].ID.String()

	_, err = s.run("edit", id, "--status", "Completed", "--rating", "9.5")
	s.Require().NoError(err)
	got := s.items()[0]
	s.Equal(domain.StatusCompleted, got.Status)
	s.Equal(9.5, got.Rating)
	s.Equal("Hades", got.Title)

	out, err := s.run("delete", id)
	s.Require().NoError(err)
	s.Contains(out, "Deleted")
	s.Empty(s.items())

	_, err = s.run("delete", id)
	s.Error(err)
	_, err = s.run("edit", uuid.NewString(), "--title", "x")
	s.Error(err)
	_, err = s.run("delete", "not-an-id")
	s.Error(err)
}

func (s *CLITestSuite) TestLookup() {
	out, err := s.run("lookup", "dune", "part", "two")
	s.Require().NoError(err)
	s.Contains(out, "Dune: Part Two")
	s.Contains(out, "2024")
	s.Contains(out, "8.5")
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func TestRootCmd_APIFromEnv(t *testing.T) {
	t.Setenv(cli.EnvAPIURL, "http://catalog.internal:5000")
	cmd := cli.NewRootCmd()
	flag := cmd.PersistentFlags().Lookup("api")
	require.NotNil(t, flag)
	assert.Equal(t, "http://catalog.internal:5000", flag.DefValue)
}
