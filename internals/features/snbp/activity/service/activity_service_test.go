package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestBuild(t *testing.T) {
	uid := uuid.New()
	eid := uuid.New()
	m := Build(&uid, " create ", "siswa", &eid, map[string]any{"nisn": "0012345678"}, "10.0.0.1")

	if m.Action != "create" || *m.EntityType != "siswa" || *m.EntityID != eid.String() {
		t.Fatalf("unexpected log %+v", m)
	}
	if string(m.Detail) != `{"nisn":"0012345678"}` {
		t.Fatalf("detail = %s", m.Detail)
	}
	if m.IPAddress == nil || *m.IPAddress != "10.0.0.1" {
		t.Fatalf("ip not set")
	}

	empty := Build(nil, "login", "", nil, nil, "")
	if empty.EntityType != nil || empty.EntityID != nil || empty.Detail != nil || empty.IPAddress != nil {
		t.Fatalf("optional fields must stay nil: %+v", empty)
	}
}
