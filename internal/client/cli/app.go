package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/eventplanner/internal/client/client"
	"github.com/dmitrijs2005/eventplanner/internal/client/config"
	pb "github.com/dmitrijs2005/eventplanner/internal/proto"
)

// API is the server surface the CLI uses; *client.GRPCClient implements it.
type API interface {
	Register(ctx context.Context, email string, password []byte) error
	Login(ctx context.Context, email string, password []byte) (*pb.LoginResponse, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*pb.SessionResponse, error)
	ListEvents(ctx context.Context) ([]*pb.Event, error)
	CreateEvent(ctx context.Context, req *pb.CreateEventRequest) (*pb.Event, error)
	GetEvent(ctx context.Context, id string) (*pb.Event, error)
	LoggedIn() bool
	Close() error
}

type App struct {
	config *config.Config
	api    API
	reader *bufio.Reader
	out    io.Writer
	email  string
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewEventPlannerClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, api API, in io.Reader, out io.Writer) *App {
	return &App{config: c, api: api, reader: bufio.NewReader(in), out: out}
}

// Run starts the REPL and closes the connection when it ends.
func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.runREPL(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.api.LoggedIn()
}

// withTimeout bounds a single server call by the configured request timeout.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
