// teamline - command-line client for the sports-team management service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"teamline/api"
	"teamline/config"
	"teamline/logger"
	"teamline/services"
	"teamline/storage"
	"teamline/store"
)

const usage = `teamline - sports-team management client

Usage: teamline <command> [flags]

Commands:
  register      create an account and sign in
  login         sign in
  logout        sign out and clear stored credentials
  whoami        show the current session
  teams         list my teams and teams available to join
  team          show one team (-id)
  create-team   create a team (-name, -desc)
  join          join a team (-id, -user, -role)
  feed          cross-team post feed
  posts         posts of one team (-id)
  post          post detail with comments (-team, -id)
  new-post      publish a post (-team, -title, -content)
  comment       comment on a post (-team, -post, -content)
  events        events of one team (-id)
  schedule      cross-team event feed
  new-event     create an event (-team, -title, -start, -end, -loc, -desc)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	local, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalw("open local storage", "path", cfg.Storage.Path, "error", err)
	}
	defer local.Close()

	client := api.New(cfg.API.BaseURL, cfg.HTTP.Timeout, local, log)
	st := store.New(local)
	svc := services.New(st, client, log)

	app := &cli{store: st, svc: svc}
	ctx := context.Background()

	if !app.run(ctx, os.Args[1], os.Args[2:]) {
		os.Exit(1)
	}
}

type cli struct {
	store *store.Store
	svc   *services.Service
}

// run executes one command and reports success. Failed operations leave their
// message in the relevant slice's Error field, which run prints.
func (a *cli) run(ctx context.Context, command string, args []string) bool {
	switch command {
	case "register":
		return a.register(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "logout":
		a.svc.LogoutUser(ctx)
		fmt.Println("Signed out.")
		return true
	case "whoami":
		return a.whoami()
	case "teams":
		return a.teams(ctx)
	case "team":
		return a.team(ctx, args)
	case "create-team":
		return a.createTeam(ctx, args)
	case "join":
		return a.join(ctx, args)
	case "feed":
		return a.feed(ctx)
	case "posts":
		return a.posts(ctx, args)
	case "post":
		return a.post(ctx, args)
	case "new-post":
		return a.newPost(ctx, args)
	case "comment":
		return a.comment(ctx, args)
	case "events":
		return a.events(ctx, args)
	case "schedule":
		return a.schedule(ctx)
	case "new-event":
		return a.newEvent(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return false
	}
}

func (a *cli) register(ctx context.Context, args []string) bool {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("user", "", "username")
	email := fs.String("email", "", "email address")
	password := fs.String("pass", "", "password")
	fs.Parse(args)

	ok := a.svc.RegisterUser(ctx, api.RegisterRequest{
		Username:  *username,
		Email:     *email,
		Password:  *password,
		Password2: *password,
	})
	auth := a.store.State().Auth
	if !ok {
		fmt.Fprintln(os.Stderr, "Registration failed:", auth.Error)
		return false
	}
	fmt.Printf("Registered and signed in as %s (id %d)\n", auth.User.Username, auth.User.ID)
	return true
}

func (a *cli) login(ctx context.Context, args []string) bool {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("user", "", "username")
	password := fs.String("pass", "", "password")
	fs.Parse(args)

	ok := a.svc.LoginUser(ctx, *username, *password)
	auth := a.store.State().Auth
	if !ok {
		fmt.Fprintln(os.Stderr, "Login failed:", auth.Error)
		return false
	}
	fmt.Printf("Signed in as %s (id %d)\n", auth.User.Username, auth.User.ID)
	return true
}

func (a *cli) whoami() bool {
	auth := a.store.State().Auth
	if !auth.IsAuthenticated {
		fmt.Println("Not signed in.")
		return false
	}
	name := store.PlaceholderUsername
	if auth.User != nil {
		name = auth.User.Username
	}
	fmt.Printf("Signed in as %s\n", name)
	return true
}

func (a *cli) currentUserID() int {
	auth := a.store.State().Auth
	if auth.User != nil {
		return auth.User.ID
	}
	return 0
}

func (a *cli) teams(ctx context.Context) bool {
	a.svc.FetchAllTeamsAndUserMemberships(ctx, a.currentUserID())
	teams := a.store.State().Teams
	if teams.Error != "" {
		fmt.Fprintln(os.Stderr, "Error:", teams.Error)
		return false
	}
	fmt.Println("My teams:")
	for _, t := range teams.Teams {
		fmt.Printf("  #%d %s (%d members)\n", t.ID, t.Name, len(t.Memberships))
	}
	fmt.Println("Available to join:")
	for _, t := range teams.TeamsToJoin {
		fmt.Printf("  #%d %s\n", t.ID, t.Name)
	}
	return true
}

func (a *cli) team(ctx context.Context, args []string) bool {
	fs := flag.NewFlagSet("team", flag.ExitOnError)
	id := fs.Int("id", 0, "team id")
	fs.Parse(args)

	a.svc.FetchTeamDetail(ctx, *id)
	teams := a.store.State().Teams
	if teams.Error != "" || teams.TeamDetail == nil {
		fmt.Fprintln(os.Stderr, "Error:", teams.Error)
		return false
	}
	t := teams.TeamDetail
	fmt.Printf("#%d %s\n%s\n", t.ID, t.Name, t.Description)
	for _, m := range t.Memberships {
		fmt.Printf("  %s (%s)\n", m.User.Username, m.Role)
	}
	return true
}

func (a *cli) createTeam(ctx context.Context, args []string) bool {
	fs := flag.NewFlagSet("create-team", flag.ExitOnError)
	name := fs.String("name", "", "team name")
	desc := fs.String("desc", "", "description")
	fs.Parse(args)

	if verrs := services.ValidateTeam(*name); len(verrs) > 0 {
		printFieldErrors(verrs)
		return false
	}
	if !a.svc.CreateNewTeam(ctx, *name, *desc) {
		fmt.Fprintln(os.Stderr, "Error:", a.store.State().Teams.Error)
		return false
	}
	fmt.Printf("Created team %q\n", *name)
	return true
}

func (a *cli) join(ctx context.Context, args []string) bool {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	id := fs.Int("id", 0, "team id")
	user := fs.String("user", "", "username to add")
	role := fs.String("role", "member", "membership role")
	fs.Parse(args)

	if !a.svc.JoinTeam(ctx, *id, *user, *role) {
		fmt.Fprintln(os.Stderr, "Error:", a.store.State().Teams.Error)
		return false
	}
	fmt.Printf("Joined team #%d\n", *id)
	return true
}

func (a *cli) feed(ctx context.Context) bool {
	a.svc.FetchPostsFeed(ctx, a.currentUserID())
	posts := a.store.State().Posts
	if posts.Error != "" {
		fmt.Fprintln(os.Stderr, "Error:", posts.Error)
		return false
	}
	for _, p := range posts.Feed {
		fmt.Printf("[%s] %s — %s (%d comments)\n",
			p.TeamName, p.Title, p.CreatedAt.Format("2006-01-02 15:04"), p.CommentsCount)
	}
	return true
}

func (a *cli) posts(ctx context.Context, args []string) bool {
	fs := flag.NewFlagSet("posts", flag.ExitOnError)
	id := fs.Int("id", 0, "team id")
	fs.Parse(args)

	a.svc.FetchTeamPosts(ctx, *id)
	posts := a.store.State().Posts
	if posts.Error != "" {
		fmt.Fprintln(os.Stderr, "Error:", posts.Error)
		return false
	}
	for _, p := range posts.TeamPosts {
		fmt.Printf("#%d %s by %s\n", p.ID, p.Title, p.Author.Username)
	}
	return true
}

func (a *cli) post(ctx context.Context, args []string) bool {
	fs := flag.NewFlagSet("post", flag.ExitOnError)
	teamID := fs.Int("team", 0, "team id")
	id := fs.Int("id", 0, "post id")
	fs.Parse(args)

	a.svc.FetchPostDetail(ctx, *teamID, *id)
	posts := a.store.State().Posts
	if posts.Error != "" || posts.PostDetail == nil {
		fmt.Fprintln(os.Stderr, "Error:", posts.Error)
		return false
	}
	p := posts.PostDetail
	fmt.Printf("%s\nby %s on %s\n\n%s\n\nComments (%d):\n",
		p.Title, p.Author.Username, p.CreatedAt.Format("2006-01-02"), p.Content, p.CommentsCount)
	for _, cm := range posts.Comments {
		fmt.Printf("  %s: %s\n", cm.Author.Username, cm.Content)
	}
	return true
}

func (a *cli) newPost(ctx context.Context, args []string) bool {
	fs := flag.NewFlagSet("new-post", flag.ExitOnError)
	teamID := fs.Int("team", 0, "team id")
	title := fs.String("title", "", "post title")
	content := fs.String("content", "", "post body")
	fs.Parse(args)

	if verrs := services.ValidatePost(*title, *content); len(verrs) > 0 {
		printFieldErrors(verrs)
		return false
	}
	if !a.svc.CreateTeamPost(ctx, *teamID, *title, *content) {
		fmt.Fprintln(os.Stderr, "Error:", a.store.State().Posts.Error)
		return false
	}
	fmt.Println("Post published.")
	return true
}

func (a *cli) comment(ctx context.Context, args []string) bool {
	fs := flag.NewFlagSet("comment", flag.ExitOnError)
	teamID := fs.Int("team", 0, "team id")
	postID := fs.Int("post", 0, "post id")
	content := fs.String("content", "", "comment text")
	fs.Parse(args)

	if verrs := services.ValidateComment(*content); len(verrs) > 0 {
		printFieldErrors(verrs)
		return false
	}
	if !a.svc.AddComment(ctx, *teamID, *postID, *content) {
		fmt.Fprintln(os.Stderr, "Error:", a.store.State().Posts.Error)
		return false
	}
	fmt.Println("Comment added.")
	return true
}

func (a *cli) events(ctx context.Context, args []string) bool {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	id := fs.Int("id", 0, "team id")
	fs.Parse(args)

	a.svc.FetchTeamEvents(ctx, *id)
	events := a.store.State().Events
	if events.Error != "" {
		fmt.Fprintln(os.Stderr, "Error:", events.Error)
		return false
	}
	for _, e := range events.TeamEvents {
		fmt.Printf("#%d %s at %s\n", e.ID, e.Title, e.StartTime.Format("2006-01-02 15:04"))
	}
	return true
}

func (a *cli) schedule(ctx context.Context) bool {
	a.svc.FetchEventsFeed(ctx, a.currentUserID())
	events := a.store.State().Events
	if events.Error != "" {
		fmt.Fprintln(os.Stderr, "Error:", events.Error)
		return false
	}
	for _, e := range events.Feed {
		fmt.Printf("[%s] %s at %s\n", e.TeamName, e.Title, e.StartTime.Format("2006-01-02 15:04"))
	}
	return true
}

func (a *cli) newEvent(ctx context.Context, args []string) bool {
	fs := flag.NewFlagSet("new-event", flag.ExitOnError)
	teamID := fs.Int("team", 0, "team id")
	title := fs.String("title", "", "event title")
	desc := fs.String("desc", "", "description")
	start := fs.String("start", "", "start time (RFC 3339)")
	end := fs.String("end", "", "end time (RFC 3339, optional)")
	loc := fs.String("loc", "", "location")
	fs.Parse(args)

	req := api.CreateEventRequest{Title: *title, Description: *desc, Location: *loc}
	if *start != "" {
		t, err := time.Parse(time.RFC3339, *start)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Invalid -start:", err)
			return false
		}
		req.StartTime = t
	}
	if *end != "" {
		t, err := time.Parse(time.RFC3339, *end)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Invalid -end:", err)
			return false
		}
		req.EndTime = &t
	}

	if verrs := services.ValidateEvent(req, time.Now()); len(verrs) > 0 {
		printFieldErrors(verrs)
		return false
	}
	if !a.svc.CreateTeamEvent(ctx, *teamID, req) {
		fmt.Fprintln(os.Stderr, "Error:", a.store.State().Events.Error)
		return false
	}
	fmt.Println("Event created.")
	return true
}

func printFieldErrors(verrs services.ValidationErrors) {
	for field, msg := range verrs {
		fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
	}
}
