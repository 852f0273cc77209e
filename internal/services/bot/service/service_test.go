package service

import (
	"context"
	"strings"
	"testing"
	"time"

	perr "sensutv/internal/platform/errors"
	"sensutv/internal/services/bot/domain"
	catalog "sensutv/internal/services/catalog/domain"
	catrepo "sensutv/internal/services/catalog/repo"
	catsvc "sensutv/internal/services/catalog/service"
	intakesvc "sensutv/internal/services/intake/service"
)

type memDocs struct {
	data map[string][]byte
}

func newMemDocs() *memDocs { return &memDocs{data: map[string][]byte{}} }

func (m *memDocs) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := m.data[key]
	if !ok {
		return nil, perr.NotFoundf("no document at %s", key)
	}
	return b, nil
}

func (m *memDocs) Put(_ context.Context, key string, data []byte, _ string) error {
	m.data[key] = append([]byte(nil), data...)
	return nil
}

// fakeFiles serves canned payloads by file id
type fakeFiles struct {
	payloads map[string][]byte
}

func (f *fakeFiles) Download(_ context.Context, fileID string) ([]byte, error) {
	b, ok := f.payloads[fileID]
	if !ok {
		return nil, perr.Newf(perr.ErrorCodeUnavailable, "no file %s", fileID)
	}
	return b, nil
}

const operatorID = int64(42)

func newDispatcher(files *fakeFiles) (*Service, *catsvc.Service, *memDocs) {
	d := newMemDocs()
	cat := catsvc.New(d, catrepo.NewSplit(), catsvc.Config{
		Bucket: "sensutv-media",
		Region: "eu-central-2",
		Now:    func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) },
	})
	stepper := intakesvc.New(cat, cat)
	if files == nil {
		files = &fakeFiles{payloads: map[string][]byte{}}
	}
	svc := New(cat, cat, stepper, files, Config{
		Bucket:     "sensutv-media",
		Region:     "eu-central-2",
		Store:      "file",
		AllowedIDs: []int64{operatorID},
	})
	return svc, cat, d
}

func cmd(chat, user int64, name, args string) domain.Incoming {
	return domain.Incoming{ChatID: chat, UserID: user, Command: name, Args: args}
}

func text(chat, user int64, t string) domain.Incoming {
	return domain.Incoming{ChatID: chat, UserID: user, Text: t}
}

func seedModel(t *testing.T, cat *catsvc.Service) {
	t.Helper()
	if _, err := cat.RegisterModel(context.Background(), catalog.RegisterInput{
		Name: "Aurora", Country: "Perú", AgeRaw: "23", TagsRaw: "latina",
	}); err != nil {
		t.Fatalf("seed model: %v", err)
	}
}

func TestDispatch_StartListsCommands(t *testing.T) {
	t.Parallel()

	svc, _, _ := newDispatcher(nil)
	got := svc.Dispatch(context.Background(), cmd(1, 1, "start", ""))
	for _, want := range []string{"/register", "/plan", "/last", "sensutv-media", "eu-central-2"} {
		if !strings.Contains(got, want) {
			t.Fatalf("start reply missing %q: %q", want, got)
		}
	}
}

func TestDispatch_UnknownCommandIsSilent(t *testing.T) {
	t.Parallel()

	svc, _, _ := newDispatcher(nil)
	if got := svc.Dispatch(context.Background(), cmd(1, 1, "frobnicate", "")); got != "" {
		t.Fatalf("reply = %q, want silence", got)
	}
}

func TestDispatch_ModelsEmptyAndListed(t *testing.T) {
	t.Parallel()

	svc, cat, _ := newDispatcher(nil)
	ctx := context.Background()

	if got := svc.Dispatch(ctx, cmd(1, 1, "models", "")); !strings.Contains(got, "/register") {
		t.Fatalf("empty reply = %q", got)
	}

	seedModel(t, cat)
	got := svc.Dispatch(ctx, cmd(1, 1, "models", ""))
	if !strings.Contains(got, "Aurora") || !strings.Contains(got, "`aurora`") {
		t.Fatalf("list reply = %q", got)
	}
}

func TestDispatch_RegisterFlowThroughCommands(t *testing.T) {
	t.Parallel()

	svc, cat, _ := newDispatcher(nil)
	ctx := context.Background()
	const chat, user = int64(10), int64(11)

	if got := svc.Dispatch(ctx, cmd(chat, user, "register", "")); !strings.Contains(got, "Nombre") {
		t.Fatalf("register start = %q", got)
	}
	svc.Dispatch(ctx, text(chat, user, "Aurora"))
	svc.Dispatch(ctx, text(chat, user, "Perú"))
	svc.Dispatch(ctx, text(chat, user, "23"))
	done := svc.Dispatch(ctx, text(chat, user, "latina"))
	if !strings.Contains(done, "Registrada") {
		t.Fatalf("commit reply = %q", done)
	}

	if _, err := cat.GetModel(ctx, "aurora"); err != nil {
		t.Fatalf("profile missing after flow: %v", err)
	}
}

func TestDispatch_NewmodelAliasesRegister(t *testing.T) {
	t.Parallel()

	svc, _, _ := newDispatcher(nil)
	got := svc.Dispatch(context.Background(), cmd(1, 1, "newmodel", ""))
	if !strings.Contains(got, "Nombre") {
		t.Fatalf("reply = %q", got)
	}
}

func TestDispatch_IdleTextIsIgnored(t *testing.T) {
	t.Parallel()

	svc, _, _ := newDispatcher(nil)
	if got := svc.Dispatch(context.Background(), text(1, 1, "hola bot")); got != "" {
		t.Fatalf("idle chatter should get no reply, got %q", got)
	}
}

func TestDispatch_LastEmptyAndAfterPlan(t *testing.T) {
	t.Parallel()

	svc, cat, _ := newDispatcher(nil)
	ctx := context.Background()

	if got := svc.Dispatch(ctx, cmd(1, 1, "last", "")); !strings.Contains(got, "/plan") {
		t.Fatalf("empty reply = %q", got)
	}

	seedModel(t, cat)
	if _, err := cat.PlanUpload(ctx, catalog.PlanInput{ModelID: "aurora", Type: catalog.TypeVideo, Category: "teaser"}); err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	got := svc.Dispatch(ctx, cmd(1, 1, "last", ""))
	if !strings.Contains(got, "peru/aurora/video/teaser/2026-08-30/") {
		t.Fatalf("last reply = %q", got)
	}
}

func TestDispatch_Whoami(t *testing.T) {
	t.Parallel()

	svc, _, _ := newDispatcher(nil)
	ctx := context.Background()

	if got := svc.Dispatch(ctx, cmd(1, operatorID, "whoami", "")); !strings.Contains(got, "sí") {
		t.Fatalf("operator reply = %q", got)
	}
	if got := svc.Dispatch(ctx, cmd(1, 999, "whoami", "")); !strings.Contains(got, "*no*") {
		t.Fatalf("stranger reply = %q", got)
	}
}

func TestDispatch_SetModelAuthorization(t *testing.T) {
	t.Parallel()

	svc, cat, _ := newDispatcher(nil)
	ctx := context.Background()
	seedModel(t, cat)

	if got := svc.Dispatch(ctx, cmd(1, 999, "setmodel", "aurora")); !strings.Contains(got, "⛔") {
		t.Fatalf("stranger should be refused: %q", got)
	}
	if got := svc.Dispatch(ctx, cmd(1, operatorID, "setmodel", "")); !strings.Contains(got, "Uso:") {
		t.Fatalf("missing arg reply = %q", got)
	}
	if got := svc.Dispatch(ctx, cmd(1, operatorID, "setmodel", "nadie")); !strings.Contains(got, "no válido") {
		t.Fatalf("bad id reply = %q", got)
	}
	if got := svc.Dispatch(ctx, cmd(1, operatorID, "setmodel", "Aurora")); !strings.Contains(got, "🎯") {
		t.Fatalf("set reply = %q", got)
	}
}

func TestDispatch_MediaBranch(t *testing.T) {
	t.Parallel()

	files := &fakeFiles{payloads: map[string][]byte{
		"vid-1":   []byte("video-bytes"),
		"thumb-1": []byte("thumb-bytes"),
	}}
	svc, cat, docs := newDispatcher(files)
	ctx := context.Background()
	seedModel(t, cat)

	video := domain.Incoming{
		ChatID: 1, UserID: operatorID,
		Caption: "Backstage",
		Video:   &domain.Attachment{FileID: "vid-1", ThumbFileID: "thumb-1", Filename: "clip.mp4", ContentType: "video/mp4"},
	}

	// refused before an active model is picked
	if got := svc.Dispatch(ctx, video); !strings.Contains(got, "/setmodel") {
		t.Fatalf("no active model reply = %q", got)
	}

	svc.Dispatch(ctx, cmd(1, operatorID, "setmodel", "aurora"))
	got := svc.Dispatch(ctx, video)
	if !strings.Contains(got, "models/aurora/media/2026/08/30/clip.mp4") {
		t.Fatalf("media reply = %q", got)
	}

	if string(docs.data["models/aurora/media/2026/08/30/clip.mp4"]) != "video-bytes" {
		t.Fatalf("media bytes not persisted")
	}
	if string(docs.data["thumbs/aurora/media/2026/08/30/clip.jpg"]) != "thumb-bytes" {
		t.Fatalf("thumb bytes not persisted")
	}

	items, err := cat.ListUploads(ctx, false)
	if err != nil || len(items) != 1 {
		t.Fatalf("expected one record, got %v %v", items, err)
	}
	if items[0].Source != catalog.SourceMedia || items[0].Title != "Backstage" {
		t.Fatalf("record mismatch: %+v", items[0])
	}

	// stranger media is always refused
	stranger := video
	stranger.UserID = 999
	if got := svc.Dispatch(ctx, stranger); !strings.Contains(got, "⛔") {
		t.Fatalf("stranger media reply = %q", got)
	}
}

func TestDispatch_MediaDownloadFailure(t *testing.T) {
	t.Parallel()

	svc, cat, _ := newDispatcher(&fakeFiles{payloads: map[string][]byte{}})
	ctx := context.Background()
	seedModel(t, cat)
	svc.Dispatch(ctx, cmd(1, operatorID, "setmodel", "aurora"))

	got := svc.Dispatch(ctx, domain.Incoming{
		ChatID: 1, UserID: operatorID,
		Photo: &domain.Attachment{FileID: "missing", Filename: "x.jpg", ContentType: "image/jpeg"},
	})
	if !strings.Contains(got, "descargar") {
		t.Fatalf("download failure reply = %q", got)
	}

	items, _ := cat.ListUploads(ctx, false)
	if len(items) != 0 {
		t.Fatalf("failed download must leave no record: %+v", items)
	}
}

func TestDispatch_EmptyAllowListRefusesEveryone(t *testing.T) {
	t.Parallel()

	d := newMemDocs()
	cat := catsvc.New(d, catrepo.NewSplit(), catsvc.Config{Bucket: "b", Region: "r"})
	stepper := intakesvc.New(cat, cat)
	svc := New(cat, cat, stepper, &fakeFiles{payloads: map[string][]byte{}}, Config{})

	got := svc.Dispatch(context.Background(), cmd(1, operatorID, "setmodel", "aurora"))
	if !strings.Contains(got, "⛔") {
		t.Fatalf("empty allow list should refuse: %q", got)
	}
}
