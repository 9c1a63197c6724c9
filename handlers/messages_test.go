package handlers

import (
	"fmt"
	"net/http"
	"testing"
)

func TestMessageRoundTrip(t *testing.T) {
	r := setupTest(t)

	aToken, aID := registerAndLogin(t, r, "alice")
	bToken, bID := registerAndLogin(t, r, "bob")

	texts := []string{"hi bob", "is Dune still free?", "asking for a friend"}
	for _, text := range texts {
		w := doRequest(t, r, http.MethodPost, "/api/messages/send", aToken, map[string]any{
			"receiver_username": "bob",
			"body":              text,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("send %q: status %d, body %s", text, w.Code, w.Body.String())
		}
	}

	// Bob replies
	w := doRequest(t, r, http.MethodPost, "/api/messages/send", bToken, map[string]any{
		"receiver_username": "alice",
		"body":              "yes it is",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("reply: status %d, body %s", w.Code, w.Body.String())
	}

	// Both sides fetch the same conversation
	for _, view := range []struct {
		token   string
		otherID uint
	}{
		{aToken, bID},
		{bToken, aID},
	} {
		w := doRequest(t, r, http.MethodGet,
			fmt.Sprintf("/api/messages/conversation/%d", view.otherID), view.token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("conversation: status %d, body %s", w.Code, w.Body.String())
		}

		messages, _ := decodeBody(t, w)["messages"].([]any)
		if len(messages) != 4 {
			t.Fatalf("conversation has %d messages, want 4", len(messages))
		}

		// Chronological order, sender identity intact
		for i, text := range texts {
			msg := messages[i].(map[string]any)
			if msg["body"] != text {
				t.Errorf("message %d body = %v, want %q", i, msg["body"], text)
			}
			if got := uint(msg["sender_id"].(float64)); got != aID {
				t.Errorf("message %d sender = %d, want %d", i, got, aID)
			}
			if got := uint(msg["receiver_id"].(float64)); got != bID {
				t.Errorf("message %d receiver = %d, want %d", i, got, bID)
			}
		}
		last := messages[3].(map[string]any)
		if got := uint(last["sender_id"].(float64)); got != bID {
			t.Errorf("last message sender = %d, want %d", got, bID)
		}
		if last["read"] != false {
			t.Error("new message must start unread")
		}
	}
}

func TestSendToUnknownRecipient(t *testing.T) {
	r := setupTest(t)

	token, _ := registerAndLogin(t, r, "alice")

	w := doRequest(t, r, http.MethodPost, "/api/messages/send", token, map[string]any{
		"receiver_username": "nobody",
		"body":              "hello?",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404; body %s", w.Code, w.Body.String())
	}
}

func TestConversationExcludesThirdParties(t *testing.T) {
	r := setupTest(t)

	aToken, _ := registerAndLogin(t, r, "alice")
	_, bID := registerAndLogin(t, r, "bob")
	cToken, _ := registerAndLogin(t, r, "carol")

	// Alice -> Bob, Carol -> Bob
	doRequest(t, r, http.MethodPost, "/api/messages/send", aToken, map[string]any{
		"receiver_username": "bob", "body": "from alice",
	})
	doRequest(t, r, http.MethodPost, "/api/messages/send", cToken, map[string]any{
		"receiver_username": "bob", "body": "from carol",
	})

	w := doRequest(t, r, http.MethodGet,
		fmt.Sprintf("/api/messages/conversation/%d", bID), aToken, nil)
	messages, _ := decodeBody(t, w)["messages"].([]any)
	if len(messages) != 1 {
		t.Fatalf("alice/bob conversation has %d messages, want 1", len(messages))
	}
	if messages[0].(map[string]any)["body"] != "from alice" {
		t.Errorf("unexpected message in conversation: %v", messages[0])
	}
}

func TestCommunityUsernamesExcludesCaller(t *testing.T) {
	r := setupTest(t)

	aToken, _ := registerAndLogin(t, r, "alice")
	bToken, bID := registerAndLogin(t, r, "bob")
	cToken, cID := registerAndLogin(t, r, "carol")

	communityID := createCommunity(t, r, aToken, "Readers", "1234")
	joinCommunity(t, r, bToken, communityID, "1234")
	joinCommunity(t, r, cToken, communityID, "1234")

	w := doRequest(t, r, http.MethodGet, "/api/messages/community-usernames", aToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	contacts, _ := decodeBody(t, w)["contacts"].([]any)
	if len(contacts) != 1 {
		t.Fatalf("got %d contact groups, want 1", len(contacts))
	}

	members, _ := contacts[0].(map[string]any)["members"].([]any)
	if len(members) != 2 {
		t.Fatalf("got %d members, want 2", len(members))
	}
	seen := map[uint]bool{}
	for _, m := range members {
		seen[uint(m.(map[string]any)["id"].(float64))] = true
	}
	if !seen[bID] || !seen[cID] {
		t.Errorf("members = %v, want bob and carol", members)
	}
}
