package tui

import (
	"context"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/bcacic/joyful-playroom-manager/internal/cache"
	"github.com/bcacic/joyful-playroom-manager/pkg/client"
	"github.com/bcacic/joyful-playroom-manager/pkg/view"
)

// backend bundles the API client with the response cache. Every screen
// issues its loads and mutations through here.
//
// Loads carry a request ID: a screen remembers the ID of its most recent
// request and drops any result that arrives tagged with an older one, so a
// slow response can never overwrite a newer screen state.
type backend struct {
	client *client.Client
	cache  *cache.Store
}

func newBackend(c *client.Client) *backend {
	return &backend{client: c, cache: cache.NewStore()}
}

// newReqID tags a load so stale responses can be recognized and dropped.
func newReqID() string {
	return uuid.NewString()
}

// refreshMsg asks the active screen to (re)load its data.
type refreshMsg struct{}

func refreshCmd() tea.Msg { return refreshMsg{} }

type kidsLoadedMsg struct {
	reqID string
	kids  []view.Kid
	err   error
}

type partiesLoadedMsg struct {
	reqID   string
	parties []view.Party
	kids    []view.Kid
	err     error
}

type partyLoadedMsg struct {
	reqID string
	party view.Party
	err   error
}

type kidDetailMsg struct {
	reqID   string
	kid     view.Kid
	parties []view.Party
	err     error
}

type partySavedMsg struct{ err error }
type partyDeletedMsg struct{ err error }
type kidSavedMsg struct{ err error }
type kidDeletedMsg struct{ err error }
type copyResultMsg struct{ err error }

// kidList returns all kids, from cache when a previous visit already
// fetched them.
func (b *backend) kidList(ctx context.Context) ([]view.Kid, error) {
	if v, ok := b.cache.Get(cache.ListKey(cache.EntityKid)); ok {
		return v.([]view.Kid), nil
	}
	profiles, err := b.client.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	kids := make([]view.Kid, len(profiles))
	for i, p := range profiles {
		kids[i] = view.KidFromWire(p, now)
	}
	b.cache.Put(cache.ListKey(cache.EntityKid), kids)
	return kids, nil
}

// partyList returns all parties, from cache when possible.
func (b *backend) partyList(ctx context.Context) ([]view.Party, error) {
	if v, ok := b.cache.Get(cache.ListKey(cache.EntityParty)); ok {
		return v.([]view.Party), nil
	}
	records, err := b.client.ListParties(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	parties := make([]view.Party, len(records))
	for i, r := range records {
		parties[i] = view.PartyFromWire(r, now)
	}
	b.cache.Put(cache.ListKey(cache.EntityParty), parties)
	return parties, nil
}

// loadKids fetches the kid list.
func (b *backend) loadKids(reqID string) tea.Cmd {
	return func() tea.Msg {
		kids, err := b.kidList(context.Background())
		return kidsLoadedMsg{reqID: reqID, kids: kids, err: err}
	}
}

// loadParties fetches the party list plus the kid list, so rows can show
// the kid's name rather than a bare ID.
func (b *backend) loadParties(reqID string) tea.Cmd {
	return func() tea.Msg {
		parties, err := b.partyList(context.Background())
		if err != nil {
			return partiesLoadedMsg{reqID: reqID, err: err}
		}
		kids, err := b.kidList(context.Background())
		if err != nil {
			// Names are a nicety; the list is still usable without them.
			kids = nil
		}
		return partiesLoadedMsg{reqID: reqID, parties: parties, kids: kids}
	}
}

// loadParty fetches one party by view ID.
func (b *backend) loadParty(reqID, id string) tea.Cmd {
	return func() tea.Msg {
		if v, ok := b.cache.Get(cache.Key(cache.EntityParty, id)); ok {
			return partyLoadedMsg{reqID: reqID, party: v.(view.Party)}
		}
		n, err := strconv.Atoi(id)
		if err != nil {
			return partyLoadedMsg{reqID: reqID, err: err}
		}
		record, err := b.client.GetParty(context.Background(), n)
		if err != nil {
			return partyLoadedMsg{reqID: reqID, err: err}
		}
		p := view.PartyFromWire(*record, time.Now())
		b.cache.Put(cache.Key(cache.EntityParty, id), p)
		return partyLoadedMsg{reqID: reqID, party: p}
	}
}

// loadKidDetail fetches one kid plus every party booked for them.
func (b *backend) loadKidDetail(reqID, id string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		kid, ok := func() (view.Kid, bool) {
			if v, hit := b.cache.Get(cache.Key(cache.EntityKid, id)); hit {
				return v.(view.Kid), true
			}
			return view.Kid{}, false
		}()
		if !ok {
			n, err := strconv.Atoi(id)
			if err != nil {
				return kidDetailMsg{reqID: reqID, err: err}
			}
			record, err := b.client.GetProfile(ctx, n)
			if err != nil {
				return kidDetailMsg{reqID: reqID, err: err}
			}
			kid = view.KidFromWire(*record, time.Now())
			b.cache.Put(cache.Key(cache.EntityKid, id), kid)
		}

		all, err := b.partyList(ctx)
		if err != nil {
			return kidDetailMsg{reqID: reqID, kid: kid, err: err}
		}
		var parties []view.Party
		for _, p := range all {
			if p.KidID == id {
				parties = append(parties, p)
			}
		}
		return kidDetailMsg{reqID: reqID, kid: kid, parties: parties}
	}
}

// saveParty creates or updates a booking depending on whether the view
// record carries an ID. Writes are never retried; a failure comes straight
// back so the form keeps its values for resubmission.
func (b *backend) saveParty(p view.Party) tea.Cmd {
	return func() tea.Msg {
		record := view.PartyToWire(p, time.Now())
		var err error
		if record.ID == nil {
			_, err = b.client.CreateParty(context.Background(), record)
		} else {
			err = b.client.UpdateParty(context.Background(), *record.ID, record)
		}
		if err == nil {
			b.cache.Invalidate(cache.EntityParty)
		}
		return partySavedMsg{err: err}
	}
}

func (b *backend) deleteParty(id string) tea.Cmd {
	return func() tea.Msg {
		n, err := strconv.Atoi(id)
		if err != nil {
			return partyDeletedMsg{err: err}
		}
		if err := b.client.DeleteParty(context.Background(), n); err != nil {
			return partyDeletedMsg{err: err}
		}
		b.cache.Invalidate(cache.EntityParty)
		return partyDeletedMsg{}
	}
}

func (b *backend) saveKid(k view.Kid) tea.Cmd {
	return func() tea.Msg {
		record := view.KidToWire(k, time.Now())
		var err error
		if record.ID == nil {
			_, err = b.client.CreateProfile(context.Background(), record)
		} else {
			err = b.client.UpdateProfile(context.Background(), *record.ID, record)
		}
		if err == nil {
			b.cache.Invalidate(cache.EntityKid)
		}
		return kidSavedMsg{err: err}
	}
}

func (b *backend) deleteKid(id string) tea.Cmd {
	return func() tea.Msg {
		n, err := strconv.Atoi(id)
		if err != nil {
			return kidDeletedMsg{err: err}
		}
		if err := b.client.DeleteProfile(context.Background(), n); err != nil {
			return kidDeletedMsg{err: err}
		}
		b.cache.Invalidate(cache.EntityKid)
		return kidDeletedMsg{}
	}
}

// kidNames builds the ID -> display name index the party screens use.
func kidNames(kids []view.Kid) map[string]string {
	names := make(map[string]string, len(kids))
	for _, k := range kids {
		names[k.ID] = k.Name
	}
	return names
}
