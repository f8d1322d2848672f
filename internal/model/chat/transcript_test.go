package chat_test

import (
	"fmt"
	"testing"

	"github.com/nirbhik/walletgpt/backend/internal/model/chat"
)

func buildTranscript(n int) chat.Transcript {
	var t chat.Transcript
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			t = append(t, chat.UserTurn(fmt.Sprintf("question %d", i)))
		} else {
			t = append(t, chat.AssistantTurn(fmt.Sprintf("answer %d", i)))
		}
	}
	return t
}

func TestTailShorterThanWindow(t *testing.T) {
	transcript := buildTranscript(4)
	tail := transcript.Tail(6)

	if len(tail) != 4 {
		t.Fatalf("expected full transcript, got %d turns", len(tail))
	}
}

func TestTailBoundsAndOrder(t *testing.T) {
	transcript := buildTranscript(9)
	tail := transcript.Tail(6)

	if len(tail) != 6 {
		t.Fatalf("expected 6 turns, got %d", len(tail))
	}
	for i, turn := range tail {
		if turn != transcript[3+i] {
			t.Fatalf("tail[%d] = %+v, want %+v", i, turn, transcript[3+i])
		}
	}
}

func TestTailZero(t *testing.T) {
	if tail := buildTranscript(3).Tail(0); tail != nil {
		t.Fatalf("expected nil tail, got %d turns", len(tail))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	transcript := buildTranscript(2)
	clone := transcript.Clone()
	clone[0] = chat.UserTurn("changed")

	if transcript[0].Content == "changed" {
		t.Fatal("clone shares backing array with original")
	}
}
