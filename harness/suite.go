package harness

import (
	"contact-lab/repositories"
	"contact-lab/services"
	"fmt"
	"log/slog"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// ContactSuite gives each test, and each subtest, a fresh contact manager.
// Once a subtest ends, Manager points back at the enclosing test's manager.
// Suites embed it and add their own Test methods.
type ContactSuite struct {
	suite.Suite
	Config  Config
	Manager services.IContactManager
	// StrictPhone is forwarded to every manager built by the suite
	StrictPhone bool
	log         *slog.Logger
	parents     []services.IContactManager
}

// SetupSuite loads the environment configuration before running tests
func (s *ContactSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.log = logs.GetLoggerFromLevel(slog.LevelWarn)
	s.header("suite started", color.FgGreen)
}

func (s *ContactSuite) SetupTest() {
	s.header("test started", color.FgGreen)
	s.Manager = s.NewManager()
	s.parents = nil
}

func (s *ContactSuite) SetupSubTest() {
	s.parents = append(s.parents, s.Manager)
	s.Manager = s.NewManager()
}

func (s *ContactSuite) TearDownSubTest() {
	last := len(s.parents) - 1
	if last < 0 {
		return
	}
	s.Manager = s.parents[last]
	s.parents = s.parents[:last]
}

func (s *ContactSuite) TearDownTest() {
	s.Manager = nil
	s.parents = nil
	s.header("test finished", color.FgCyan)
}

func (s *ContactSuite) TearDownSuite() {
	s.header("suite finished", color.FgCyan)
}

// NewManager builds a manager over an empty in-memory repository.
func (s *ContactSuite) NewManager() services.IContactManager {
	return services.NewContactManager(repositories.NewMemoryContactRepository(), s.log, s.StrictPhone)
}

// RequireSize asserts the number of stored contacts.
func (s *ContactSuite) RequireSize(expected int) {
	contacts, err := s.Manager.GetAllContacts()
	s.Require().NoError(err)
	s.Require().Len(contacts, expected)
}

func (s *ContactSuite) header(label string, fg color.Color) {
	header := fmt.Sprintf("  ====== %s %s (os=%s env=%q) ======", s.T().Name(), label, s.Config.OS, s.Config.Env)
	if s.Config.Colours {
		header = color.New(color.BgBlack, fg).Render(header)
	}
	s.T().Log(header)
}
