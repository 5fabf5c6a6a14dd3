package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppalog/internal/core/domain"
	"ppalog/test/mocks"
)

func newJoinFlow(backend *mocks.BackendMock) (*JoinFlow, *Session) {
	session := NewSession(backend, mocks.NewCredStoreMock(), nil)
	return NewJoinFlow(backend, backend, session, nil, nil), session
}

func TestJoinFlowGuard(t *testing.T) {
	flow, _ := newJoinFlow(mocks.NewBackendMock())

	assert.False(t, flow.Guard(nil))
	assert.False(t, flow.Guard(&domain.Identity{Role: domain.RoleSupervisor}))
	assert.False(t, flow.Guard(&domain.Identity{Role: domain.RoleCorpsMember, PPAID: "p1"}))
	assert.True(t, flow.Guard(&domain.Identity{Role: domain.RoleCorpsMember}))
}

func TestJoinFlowSetInput_NormalizesAndTracksFormat(t *testing.T) {
	backend := mocks.NewBackendMock()
	backend.ValidateJoinCodeFn = func(ctx context.Context, code string) (bool, error) {
		return true, nil
	}
	flow, _ := newJoinFlow(backend)
	ctx := context.Background()

	assert.Equal(t, JoinIdle, flow.SetInput(ctx, "   "))

	assert.Equal(t, JoinInvalid, flow.SetInput(ctx, "ppa-9f3"))
	assert.Zero(t, backend.CallCount("ValidateJoinCode"), "incomplete codes stay local")

	state := flow.SetInput(ctx, "ppa-9f3a21")
	assert.Equal(t, JoinValid, state)
	_, code := flow.State()
	assert.Equal(t, "PPA-9F3A21", code)
	assert.Equal(t, 1, backend.CallCount("ValidateJoinCode"))
}

func TestJoinFlowSetInput_DeadCodeIsInvalid(t *testing.T) {
	backend := mocks.NewBackendMock()
	backend.ValidateJoinCodeFn = func(ctx context.Context, code string) (bool, error) {
		return false, nil
	}
	flow, _ := newJoinFlow(backend)

	assert.Equal(t, JoinInvalid, flow.SetInput(context.Background(), "PPA-9F3A21"))
}

func TestJoinFlowSetInput_SupersededValidationDropped(t *testing.T) {
	backend := mocks.NewBackendMock()
	flow, _ := newJoinFlow(backend)
	ctx := context.Background()

	firstDispatched := make(chan struct{})
	release := make(chan struct{})
	backend.ValidateJoinCodeFn = func(ctx context.Context, code string) (bool, error) {
		if code == "PPA-AAAAAA" {
			close(firstDispatched)
			<-release
			return false, nil // a late "dead code" verdict for old input
		}
		return true, nil
	}

	firstState := make(chan JoinState, 1)
	go func() {
		firstState <- flow.SetInput(ctx, "PPA-AAAAAA")
	}()
	<-firstDispatched

	require.Equal(t, JoinValid, flow.SetInput(ctx, "PPA-BBBBBB"))

	close(release)
	assert.Equal(t, JoinValid, <-firstState, "the superseded verdict must not flip the newer state")
	state, code := flow.State()
	assert.Equal(t, JoinValid, state)
	assert.Equal(t, "PPA-BBBBBB", code)
}

func TestJoinFlowJoin_OnlyFromValid(t *testing.T) {
	backend := mocks.NewBackendMock()
	flow, _ := newJoinFlow(backend)

	err := flow.Join(context.Background())
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Zero(t, backend.CallCount("JoinPPA"))
}

func TestJoinFlowJoin_RefreshesSessionBinding(t *testing.T) {
	backend := mocks.NewBackendMock()
	joined := false
	backend.ValidateJoinCodeFn = func(ctx context.Context, code string) (bool, error) {
		return true, nil
	}
	backend.JoinPPAFn = func(ctx context.Context, joinCode string) error {
		assert.Equal(t, "PPA-9F3A21", joinCode)
		joined = true
		return nil
	}
	backend.CurrentUserFn = func(ctx context.Context) (*domain.Identity, error) {
		identity := domain.Identity{ID: "u1", Role: domain.RoleCorpsMember}
		if joined {
			identity.PPAID = "p1"
			identity.PPAName = "Tech Hub"
		}
		return &identity, nil
	}
	flow, session := newJoinFlow(backend)
	ctx := context.Background()

	require.Equal(t, JoinValid, flow.SetInput(ctx, "ppa-9f3a21"))
	require.NoError(t, flow.Join(ctx))

	state, _ := flow.State()
	assert.Equal(t, JoinJoined, state)
	identity := session.Current()
	require.NotNil(t, identity)
	assert.Equal(t, "Tech Hub", identity.PPAName)
}

func TestJoinFlowJoin_FailureReturnsToValid(t *testing.T) {
	backend := mocks.NewBackendMock()
	backend.ValidateJoinCodeFn = func(ctx context.Context, code string) (bool, error) {
		return true, nil
	}
	backend.JoinPPAFn = func(ctx context.Context, joinCode string) error {
		return &domain.RequestError{StatusCode: 409, Message: "code already consumed"}
	}
	flow, _ := newJoinFlow(backend)
	ctx := context.Background()

	require.Equal(t, JoinValid, flow.SetInput(ctx, "PPA-9F3A21"))
	require.Error(t, flow.Join(ctx))

	state, _ := flow.State()
	assert.Equal(t, JoinValid, state, "a failed join may be retried")
}

func TestJoinFlowSetInput_IgnoredAfterJoined(t *testing.T) {
	backend := mocks.NewBackendMock()
	backend.ValidateJoinCodeFn = func(ctx context.Context, code string) (bool, error) {
		return true, nil
	}
	flow, _ := newJoinFlow(backend)
	ctx := context.Background()

	require.Equal(t, JoinValid, flow.SetInput(ctx, "PPA-9F3A21"))
	require.NoError(t, flow.Join(ctx))

	assert.Equal(t, JoinJoined, flow.SetInput(ctx, "PPA-CCCCCC"))
	_, code := flow.State()
	assert.Equal(t, "PPA-9F3A21", code)
}
