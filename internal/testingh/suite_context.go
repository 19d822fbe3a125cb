package testingh

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"
)

const testTimeout = 30 * time.Second

// ContextSuite gives every test a context derived from the suite one.
// The test context expires after testTimeout so a stuck client fails the test instead of the run.
type ContextSuite struct {
	suite.Suite

	SuiteCtx    context.Context
	suiteCancel context.CancelFunc

	Ctx        context.Context
	testCancel context.CancelFunc
}

func (cs *ContextSuite) SetupSuite() {
	cs.SuiteCtx, cs.suiteCancel = context.WithCancel(context.Background())
}

func (cs *ContextSuite) TearDownSuite() {
	if cs.suiteCancel != nil {
		cs.suiteCancel()
	}
}

func (cs *ContextSuite) SetupTest() {
	cs.Ctx, cs.testCancel = context.WithTimeout(cs.SuiteCtx, testTimeout)
}

func (cs *ContextSuite) TearDownTest() {
	if cs.testCancel != nil {
		cs.testCancel()
	}
}
