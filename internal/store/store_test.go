package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hrsuite/internal/domain/candidate"
	"hrsuite/internal/domain/person"
	"hrsuite/internal/domain/user"
	"hrsuite/internal/domain/vacancy"
)

type noopLogger struct{}

func (noopLogger) Info(msg string)  {}
func (noopLogger) Error(msg string) {}

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "snapshot.json")
}

func account(name, taxID, login string, role user.Role, id int64) user.User {
	return user.User{
		Person:       person.Person{Name: name, TaxID: taxID, Email: login + "@example.com"},
		ID:           id,
		Login:        login,
		PasswordHash: "x",
		Role:         role,
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	path := tempPath(t)
	first := Open(path, noopLogger{})
	if err := first.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	err := first.Mutate(func(snap *Snapshot) error {
		snap.Administrators = append(snap.Administrators, account("Alice", "52998224725", "alice", user.RoleAdmin, 1))
		snap.Recruiters = append(snap.Recruiters, account("Rita", "12345678909", "rita", user.RoleRecruiter, 2))
		snap.Candidates = append(snap.Candidates, candidate.Candidate{
			Person:       person.Person{Name: "Carla", TaxID: "98765432100", Email: "carla@example.com"},
			RegisteredAt: time.Now().UTC().Truncate(time.Second),
		})
		snap.Vacancies = append(snap.Vacancies, vacancy.Vacancy{
			ID:         "8d4f1c1e-0000-4000-8000-000000000001",
			Title:      "Backend Developer",
			Department: "Engineering",
			BaseSalary: 9000,
			Status:     vacancy.StatusOpen,
			Regime:     vacancy.RegimeCLT,
			ManagerID:  "11144477735",
		})
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}

	second := Open(path, noopLogger{})
	if err := second.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	second.View(func(snap *Snapshot) {
		if len(snap.Administrators) != 1 || snap.Administrators[0].Login != "alice" {
			t.Fatalf("administrators not restored: %+v", snap.Administrators)
		}
		if snap.Administrators[0].Role != user.RoleAdmin {
			t.Fatalf("expected role admin from discriminator, got %s", snap.Administrators[0].Role)
		}
		if len(snap.Recruiters) != 1 || snap.Recruiters[0].Role != user.RoleRecruiter {
			t.Fatalf("recruiters not restored: %+v", snap.Recruiters)
		}
		if len(snap.Candidates) != 1 || snap.Candidates[0].TaxID != "98765432100" {
			t.Fatalf("candidates not restored: %+v", snap.Candidates)
		}
		if len(snap.Vacancies) != 1 || snap.Vacancies[0].Status != vacancy.StatusOpen {
			t.Fatalf("vacancies not restored: %+v", snap.Vacancies)
		}
	})

	if taxID, ok := second.FindLogin("rita"); !ok || taxID != "12345678909" {
		t.Fatalf("expected login index rebuilt on load, got %q %v", taxID, ok)
	}
}

func TestStoreSnapshotCarriesTypeDiscriminator(t *testing.T) {
	path := tempPath(t)
	st := Open(path, noopLogger{})
	if err := st.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	err := st.Mutate(func(snap *Snapshot) error {
		snap.Managers = append(snap.Managers, account("Marcos", "11144477735", "marcos", user.RoleManager, 1))
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if !strings.Contains(string(data), `"type": "MANAGER"`) {
		t.Fatalf("expected MANAGER discriminator in file, got:\n%s", data)
	}
}

func TestStoreLoadMissingFileStartsEmpty(t *testing.T) {
	st := Open(tempPath(t), noopLogger{})
	if err := st.Load(); err != nil {
		t.Fatalf("expected nil error for missing file, got %v", err)
	}
	st.View(func(snap *Snapshot) {
		if len(snap.Administrators)+len(snap.Managers)+len(snap.Recruiters)+len(snap.Employees) != 0 {
			t.Fatal("expected an empty store")
		}
	})
}

func TestStoreLoadCorruptFileStartsEmpty(t *testing.T) {
	path := tempPath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	st := Open(path, noopLogger{})
	if err := st.Load(); err != nil {
		t.Fatalf("expected nil error for corrupt file, got %v", err)
	}
	st.View(func(snap *Snapshot) {
		if len(snap.Candidates) != 0 || len(snap.Vacancies) != 0 {
			t.Fatal("expected an empty store")
		}
	})
}

func TestStoreLoadUnknownUserTypeStartsEmpty(t *testing.T) {
	path := tempPath(t)
	payload := `{"administrators":[{"type":"WIZARD","name":"Alice","tax_id":"52998224725","email":"a@example.com","id":1,"login":"alice","password_hash":"x","role":"admin"}]}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	st := Open(path, noopLogger{})
	if err := st.Load(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	st.View(func(snap *Snapshot) {
		if len(snap.Administrators) != 0 {
			t.Fatal("expected unknown discriminator to empty the store")
		}
	})
	if _, ok := st.FindLogin("alice"); ok {
		t.Fatal("expected no login index entries")
	}
}

func TestStoreMutateRebuildsLoginIndex(t *testing.T) {
	st := Open(tempPath(t), noopLogger{})
	if err := st.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	err := st.Mutate(func(snap *Snapshot) error {
		snap.Employees = append(snap.Employees, account("Eva", "98765432100", "Eva", user.RoleEmployee, 1))
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if taxID, ok := st.FindLogin("eva"); !ok || taxID != "98765432100" {
		t.Fatalf("expected lowercased login in index, got %q %v", taxID, ok)
	}

	err = st.Mutate(func(snap *Snapshot) error {
		snap.Employees = nil
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if _, ok := st.FindLogin("eva"); ok {
		t.Fatal("expected removed account to leave the index")
	}
}

func TestSnapshotNextUserID(t *testing.T) {
	snap := Snapshot{
		Managers:  []user.User{account("M", "11144477735", "m", user.RoleManager, 3)},
		Employees: []user.User{account("E", "98765432100", "e", user.RoleEmployee, 7)},
	}
	if next := snap.NextUserID(); next != 8 {
		t.Fatalf("expected next id 8, got %d", next)
	}
	empty := Snapshot{}
	if next := empty.NextUserID(); next != 1 {
		t.Fatalf("expected next id 1 on empty store, got %d", next)
	}
}

func TestStoreSaveLeavesNoTempFiles(t *testing.T) {
	path := tempPath(t)
	st := Open(path, noopLogger{})
	if err := st.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := st.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".snapshot-") {
			t.Fatalf("temp file left behind: %s", entry.Name())
		}
	}
}
