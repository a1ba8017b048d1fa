package dialog

import "testing"

func TestBeginReplacesExistingSession(t *testing.T) {
	st := NewStore()

	st.Begin(1)
	s, _ := st.Get(1)
	s, _ = Advance(s, "Старое название")
	st.Put(s)

	st.Begin(1)
	s, ok := st.Get(1)
	if !ok {
		t.Fatal("expected session after Begin")
	}
	if s.Step != StepTitle || s.Draft.Title != "" {
		t.Errorf("expected fresh session, got step=%v draft=%+v", s.Step, s.Draft)
	}
}

func TestClear(t *testing.T) {
	st := NewStore()
	st.Begin(1)
	st.Begin(2)

	st.Clear(1)

	if _, ok := st.Get(1); ok {
		t.Error("session 1 should be gone")
	}
	if _, ok := st.Get(2); !ok {
		t.Error("session 2 should remain")
	}
	if st.Len() != 1 {
		t.Errorf("Len() = %d, want 1", st.Len())
	}
}
