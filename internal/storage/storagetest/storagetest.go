// Package storagetest is a conformance suite shared by the storage.Backend
// implementations.
package storagetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/mmynk/restapis/internal/models"
	"github.com/mmynk/restapis/internal/storage"
)

// Run exercises a backend through storage.Store. open must return a fresh,
// empty backend; Run closes it.
func Run(t *testing.T, open func(t *testing.T) storage.Backend) {
	t.Helper()

	newStore := func(t *testing.T) *storage.Store {
		t.Helper()
		store := storage.New(open(t))
		t.Cleanup(func() { store.Close() })
		return store
	}

	t.Run("composer create then get", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		c := &models.Composer{FirstName: "Johann", LastName: "Bach"}
		if err := store.CreateComposer(ctx, c); err != nil {
			t.Fatalf("CreateComposer failed: %v", err)
		}
		if c.ID == "" {
			t.Fatal("expected composer ID to be generated")
		}

		got, err := store.GetComposer(ctx, c.ID)
		if err != nil {
			t.Fatalf("GetComposer failed: %v", err)
		}
		if got == nil {
			t.Fatal("expected composer, got nil")
		}
		if got.ID != c.ID || got.FirstName != "Johann" || got.LastName != "Bach" {
			t.Errorf("got %+v, want %+v", got, c)
		}
	})

	t.Run("get missing composer returns nil", func(t *testing.T) {
		store := newStore(t)
		got, err := store.GetComposer(context.Background(), "does-not-exist")
		if err != nil {
			t.Fatalf("GetComposer failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		empty, err := store.ListComposers(ctx)
		if err != nil {
			t.Fatalf("ListComposers failed: %v", err)
		}
		if empty == nil || len(empty) != 0 {
			t.Fatalf("expected empty non-nil list, got %#v", empty)
		}

		names := []string{"Bach", "Mozart", "Beethoven", "Brahms"}
		for _, n := range names {
			if err := store.CreateComposer(ctx, &models.Composer{FirstName: "X", LastName: n}); err != nil {
				t.Fatalf("CreateComposer failed: %v", err)
			}
		}

		list, err := store.ListComposers(ctx)
		if err != nil {
			t.Fatalf("ListComposers failed: %v", err)
		}
		if len(list) != len(names) {
			t.Fatalf("got %d composers, want %d", len(list), len(names))
		}
		for i, n := range names {
			if list[i].LastName != n {
				t.Errorf("position %d: got %s, want %s", i, list[i].LastName, n)
			}
		}
	})

	t.Run("update and delete", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		c := &models.Composer{FirstName: "Wolfgang", LastName: "Mozart"}
		if err := store.CreateComposer(ctx, c); err != nil {
			t.Fatalf("CreateComposer failed: %v", err)
		}

		c.FirstName = "Wolfgang Amadeus"
		if err := store.UpdateComposer(ctx, c); err != nil {
			t.Fatalf("UpdateComposer failed: %v", err)
		}
		got, _ := store.GetComposer(ctx, c.ID)
		if got == nil || got.FirstName != "Wolfgang Amadeus" {
			t.Fatalf("update not persisted: %+v", got)
		}

		missing := &models.Composer{ID: "missing", FirstName: "a", LastName: "b"}
		if err := store.UpdateComposer(ctx, missing); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("UpdateComposer on missing id: got %v, want ErrNotFound", err)
		}

		deleted, err := store.DeleteComposer(ctx, c.ID)
		if err != nil {
			t.Fatalf("DeleteComposer failed: %v", err)
		}
		if deleted == nil || deleted.FirstName != "Wolfgang Amadeus" {
			t.Errorf("expected prior state, got %+v", deleted)
		}
		if got, _ := store.GetComposer(ctx, c.ID); got != nil {
			t.Errorf("composer still present after delete: %+v", got)
		}

		again, err := store.DeleteComposer(ctx, c.ID)
		if err != nil || again != nil {
			t.Errorf("second delete: got (%+v, %v), want (nil, nil)", again, err)
		}
	})

	t.Run("person keeps nested sequences", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		p := &models.Person{
			FirstName:  "Ada",
			LastName:   "Lovelace",
			Roles:      []models.Role{{Text: "mathematician"}, {Text: "writer"}},
			Dependents: nil,
			BirthDate:  "1815-12-10",
		}
		if err := store.CreatePerson(ctx, p); err != nil {
			t.Fatalf("CreatePerson failed: %v", err)
		}

		list, err := store.ListPersons(ctx)
		if err != nil {
			t.Fatalf("ListPersons failed: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("got %d persons, want 1", len(list))
		}
		got := list[0]
		if len(got.Roles) != 2 || got.Roles[1].Text != "writer" {
			t.Errorf("roles mismatch: %+v", got.Roles)
		}
		if got.Dependents == nil || len(got.Dependents) != 0 {
			t.Errorf("expected empty dependents, got %#v", got.Dependents)
		}
	})

	t.Run("customer lookup and invoice push", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		first := &models.Customer{FirstName: "Ann", LastName: "Lee", UserName: "alee"}
		dup := &models.Customer{FirstName: "Other", LastName: "Lee", UserName: "alee"}
		for _, c := range []*models.Customer{first, dup} {
			if err := store.CreateCustomer(ctx, c); err != nil {
				t.Fatalf("CreateCustomer failed: %v", err)
			}
		}

		found, err := store.GetCustomerByUserName(ctx, "alee")
		if err != nil {
			t.Fatalf("GetCustomerByUserName failed: %v", err)
		}
		if found == nil || found.ID != first.ID {
			t.Fatalf("expected first match %s, got %+v", first.ID, found)
		}
		if found.Invoices == nil || len(found.Invoices) != 0 {
			t.Errorf("expected empty invoices, got %#v", found.Invoices)
		}

		for i := 1; i <= 2; i++ {
			inv := models.Invoice{
				Subtotal:    float64(i * 10),
				Tax:         1.5,
				DateCreated: fmt.Sprintf("2023-07-0%d", i),
				DateShipped: fmt.Sprintf("2023-07-1%d", i),
				LineItems:   []models.LineItem{{Name: "Widget", Price: 5, Quantity: float64(i)}},
			}
			if err := store.AddInvoice(ctx, first.ID, inv); err != nil {
				t.Fatalf("AddInvoice %d failed: %v", i, err)
			}
		}

		found, _ = store.GetCustomerByUserName(ctx, "alee")
		if len(found.Invoices) != 2 {
			t.Fatalf("got %d invoices, want 2", len(found.Invoices))
		}
		if found.Invoices[0].Subtotal != 10 || found.Invoices[1].Subtotal != 20 {
			t.Errorf("insertion order lost: %+v", found.Invoices)
		}
		if found.Invoices[1].LineItems[0].Quantity != 2 {
			t.Errorf("line item mismatch: %+v", found.Invoices[1].LineItems)
		}

		if missing, err := store.GetCustomerByUserName(ctx, "nobody"); err != nil || missing != nil {
			t.Errorf("unknown user name: got (%+v, %v), want (nil, nil)", missing, err)
		}
		if err := store.AddInvoice(ctx, "missing", models.Invoice{}); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("AddInvoice on missing customer: got %v, want ErrNotFound", err)
		}
	})

	t.Run("team players and delete", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		team := &models.Team{Name: "Rockets", Mascot: "Rocky"}
		if err := store.CreateTeam(ctx, team); err != nil {
			t.Fatalf("CreateTeam failed: %v", err)
		}

		if err := store.AddPlayer(ctx, team.ID, models.Player{FirstName: "Sam", LastName: "Jones", Salary: 1000}); err != nil {
			t.Fatalf("AddPlayer failed: %v", err)
		}
		got, err := store.GetTeam(ctx, team.ID)
		if err != nil || got == nil {
			t.Fatalf("GetTeam failed: %v", err)
		}
		if len(got.Players) != 1 || got.Players[0].Salary != 1000 {
			t.Errorf("players mismatch: %+v", got.Players)
		}

		teams, err := store.ListTeams(ctx)
		if err != nil || len(teams) != 1 {
			t.Fatalf("ListTeams: got (%d, %v), want 1 team", len(teams), err)
		}

		deleted, err := store.DeleteTeam(ctx, team.ID)
		if err != nil || deleted == nil || deleted.Name != "Rockets" {
			t.Fatalf("DeleteTeam: got (%+v, %v)", deleted, err)
		}
		if err := store.AddPlayer(ctx, team.ID, models.Player{FirstName: "a", LastName: "b"}); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("AddPlayer on deleted team: got %v, want ErrNotFound", err)
		}
	})

	t.Run("concurrent pushes are not lost", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		team := &models.Team{Name: "Comets", Mascot: "Halley"}
		if err := store.CreateTeam(ctx, team); err != nil {
			t.Fatalf("CreateTeam failed: %v", err)
		}

		const n = 10
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				p := models.Player{FirstName: "P", LastName: fmt.Sprint(i), Salary: float64(i)}
				errs <- store.AddPlayer(ctx, team.ID, p)
			}(i)
		}
		wg.Wait()
		close(errs)

		succeeded := 0
		for err := range errs {
			if err == nil {
				succeeded++
			}
		}

		got, err := store.GetTeam(ctx, team.ID)
		if err != nil || got == nil {
			t.Fatalf("GetTeam failed: %v", err)
		}
		if len(got.Players) != succeeded {
			t.Errorf("got %d players, want %d (one per successful push)", len(got.Players), succeeded)
		}
		if succeeded == 0 {
			t.Error("expected at least one push to succeed")
		}
	})

	t.Run("users by name and id", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		u := &models.User{UserName: "jdoe", Password: "$2a$10$hash", EmailAddress: "j@example.com"}
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		byName, err := store.GetUserByUserName(ctx, "jdoe")
		if err != nil || byName == nil || byName.ID != u.ID {
			t.Fatalf("GetUserByUserName: got (%+v, %v)", byName, err)
		}
		if byName.Password != u.Password {
			t.Errorf("password hash not persisted")
		}

		byID, err := store.GetUserByID(ctx, u.ID)
		if err != nil || byID == nil || byID.UserName != "jdoe" {
			t.Fatalf("GetUserByID: got (%+v, %v)", byID, err)
		}
	})
}
