package fiber

import (
	"testing"

	"github.com/barisgit/compgen/internal/testutil"
)

func TestEngine(t *testing.T) {
	testutil.ExerciseEngine(t, New(testutil.TestConfig()))
}
