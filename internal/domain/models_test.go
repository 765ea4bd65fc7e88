package domain

import "testing"

func TestPairKeyFor_OrderIndependent(t *testing.T) {
	a := PairKeyFor("agent_nova7", "agent_echo")
	b := PairKeyFor("agent_echo", "agent_nova7")
	if a != b {
		t.Fatalf("pair key should be order independent: %q vs %q", a, b)
	}
	if a != "agent_echo|agent_nova7" {
		t.Fatalf("unexpected pair key: %q", a)
	}
}

func TestMatch_HasParticipant(t *testing.T) {
	m := Match{User1ID: "u1", User2ID: "u2"}
	if !m.HasParticipant("u1") || !m.HasParticipant("u2") {
		t.Fatalf("participants not recognized: %+v", m)
	}
	if m.HasParticipant("u3") {
		t.Fatalf("u3 should not be a participant")
	}
}

func TestMatch_PartnerOf(t *testing.T) {
	m := Match{User1ID: "u1", User2ID: "u2"}

	p, ok := m.PartnerOf("u1")
	if !ok || p != "u2" {
		t.Fatalf("partner of u1 = %q, ok=%v", p, ok)
	}
	p, ok = m.PartnerOf("u2")
	if !ok || p != "u1" {
		t.Fatalf("partner of u2 = %q, ok=%v", p, ok)
	}
	if _, ok := m.PartnerOf("stranger"); ok {
		t.Fatalf("stranger should have no partner")
	}
}

func TestUser_IsSeeded(t *testing.T) {
	if !(User{ID: "agent_nova7"}).IsSeeded() {
		t.Fatalf("agent_ prefix should mark a seeded user")
	}
	if (User{ID: "b7f9c3d1"}).IsSeeded() {
		t.Fatalf("uuid ids are not seeded users")
	}
}
