package core

import (
	"testing"

	"github.com/go-drift/statehooks/pkg/errors"
)

func TestErrorBoundary_CapturesDescendantError(t *testing.T) {
	useRecordingHandler(t)

	var onError []*errors.BuildError
	fail := true
	var fallbackBuilt int
	owner := NewBuildOwner()
	root := MountRoot(ErrorBoundary{
		OnError: func(err *errors.BuildError) { onError = append(onError, err) },
		Fallback: func(err *errors.BuildError) Widget {
			return testStatelessWidget{buildFn: func(BuildContext) Widget {
				fallbackBuilt++
				return nil
			}}
		},
		Child: testStatelessWidget{buildFn: func(BuildContext) Widget {
			if fail {
				panic("child failed")
			}
			return nil
		}},
	}, owner)
	owner.FlushBuild()

	if len(onError) != 1 || onError[0].Recovered != "child failed" {
		t.Fatalf("expected the boundary to capture one error, got %v", onError)
	}
	if fallbackBuilt != 1 {
		t.Errorf("expected the fallback to be built once, got %d", fallbackBuilt)
	}

	state := root.(*errorBoundaryElement).State().(*ErrorBoundaryState)
	if state.Err() == nil {
		t.Fatal("expected the state to hold the captured error")
	}

	fail = false
	state.Reset()
	owner.FlushBuild()

	if state.Err() != nil {
		t.Error("expected Reset to clear the captured error")
	}
}

func TestErrorBoundary_NoErrorBuildsChild(t *testing.T) {
	built := false
	MountRoot(ErrorBoundary{
		Child: testStatelessWidget{buildFn: func(BuildContext) Widget {
			built = true
			return nil
		}},
	}, NewBuildOwner())

	if !built {
		t.Error("expected the child to be built")
	}
}
