// Package grpcgateway implements gateway.Gateway over a gRPC connection to
// the Boardroom backend. It manages the connection, injects the access token
// via interceptors, transparently refreshes an expired token once, and maps
// gRPC status codes to the gateway sentinel errors.
package grpcgateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/mzaikin/boardroom/internal/client/gateway"
	"github.com/mzaikin/boardroom/internal/client/models"
	"github.com/mzaikin/boardroom/internal/common"
	"github.com/mzaikin/boardroom/internal/logging"
	pb "github.com/mzaikin/boardroom/internal/proto"
)

// Client is the gRPC implementation of gateway.Gateway. It is safe for
// concurrent use.
type Client struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.BoardPortalClient
	log         logging.Logger

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	session      gateway.Session
}

var _ gateway.Gateway = (*Client)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (g *Client) currentTokens() (string, string) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.accessToken, g.refreshToken
}

func (g *Client) storeTokens(access, refresh string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.accessToken = access
	g.refreshToken = refresh
}

// accessTokenInterceptor attaches the access token to every unary call and,
// when the server reports it expired, refreshes the token pair once and
// replays the call. This is the only retry in the client; failed user
// operations are never replayed.
func (g *Client) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := g.currentTokens()
	ctx = withAccessToken(ctx, access)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if refresh == "" {
			return err
		}

		resp, err := g.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
		if err != nil {
			return err
		}

		g.storeTokens(resp.AccessToken, resp.RefreshToken)

		ctx = withAccessToken(ctx, resp.AccessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

// streamTokenInterceptor attaches the access token when opening the change
// feed. Streams are not replayed on token expiry; the owning store
// resubscribes on its next activation.
func (g *Client) streamTokenInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	access, _ := g.currentTokens()
	return streamer(withAccessToken(ctx, access), desc, cc, method, opts...)
}

// New dials the backend endpoint and returns a ready client. The connection
// is lazy; the first RPC observes connectivity errors.
func New(endpointURL string, log logging.Logger) (*Client, error) {
	g := &Client{endpointURL: endpointURL, log: log}

	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(g.accessTokenInterceptor),
		grpc.WithStreamInterceptor(g.streamTokenInterceptor),
	)
	if err != nil {
		return nil, err
	}
	g.conn = conn
	g.client = pb.NewBoardPortalClient(conn)
	return g, nil
}

func (g *Client) Close() error {
	return g.conn.Close()
}

func (g *Client) Login(ctx context.Context, email, password string) (gateway.Session, error) {

	req := &pb.LoginRequest{Email: email, Password: password}

	resp, err := g.client.Login(ctx, req)
	if err != nil {
		return gateway.Session{}, g.mapError(err)
	}

	session, err := gateway.SessionFromToken(resp.AccessToken)
	if err != nil {
		return gateway.Session{}, err
	}

	g.mu.Lock()
	g.accessToken = resp.AccessToken
	g.refreshToken = resp.RefreshToken
	g.session = session
	g.mu.Unlock()

	return session, nil
}

func (g *Client) Session() gateway.Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session
}

func (g *Client) Ping(ctx context.Context) error {

	resp, err := g.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return g.mapError(err)
	}

	if resp.Status != "OK" {
		return gateway.ErrUnavailable
	}

	return nil
}

// listRecords fetches all rows of a table and decodes their JSON payloads.
func listRecords[T any](ctx context.Context, g *Client, table string, filter map[string]string, orderBy string) ([]T, error) {
	resp, err := g.client.List(ctx, &pb.ListRequest{Table: table, Filter: filter, OrderBy: orderBy})
	if err != nil {
		return nil, g.mapError(err)
	}

	out := make([]T, 0, len(resp.GetRecords()))
	for _, rec := range resp.GetRecords() {
		var v T
		if err := json.Unmarshal(rec.GetPayload(), &v); err != nil {
			return nil, fmt.Errorf("decoding %s row: %w", table, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func insertRecord[T any](ctx context.Context, g *Client, table, id string, v T) (T, error) {
	var zero T

	payload, err := json.Marshal(v)
	if err != nil {
		return zero, fmt.Errorf("encoding %s row: %w", table, err)
	}

	resp, err := g.client.Insert(ctx, &pb.InsertRequest{
		Table:  table,
		Record: &pb.Record{Id: id, Payload: payload},
	})
	if err != nil {
		return zero, g.mapError(err)
	}

	var created T
	if err := json.Unmarshal(resp.GetRecord().GetPayload(), &created); err != nil {
		return zero, fmt.Errorf("decoding %s row: %w", table, err)
	}
	return created, nil
}

func updateRecord[T any](ctx context.Context, g *Client, table, id string, patch gateway.Patch) (T, error) {
	var zero T

	encoded, err := json.Marshal(patch)
	if err != nil {
		return zero, fmt.Errorf("encoding %s patch: %w", table, err)
	}

	resp, err := g.client.Update(ctx, &pb.UpdateRequest{Table: table, Id: id, Patch: encoded})
	if err != nil {
		return zero, g.mapError(err)
	}

	var updated T
	if err := json.Unmarshal(resp.GetRecord().GetPayload(), &updated); err != nil {
		return zero, fmt.Errorf("decoding %s row: %w", table, err)
	}
	return updated, nil
}

func (g *Client) deleteRecord(ctx context.Context, table, id string) error {
	_, err := g.client.Delete(ctx, &pb.DeleteRequest{Table: table, Id: id})
	if err != nil {
		return g.mapError(err)
	}
	return nil
}

func (g *Client) ListMeetings(ctx context.Context) ([]models.Meeting, error) {
	return listRecords[models.Meeting](ctx, g, gateway.TableMeetings, nil, "starts_at")
}

func (g *Client) CreateMeeting(ctx context.Context, m models.Meeting) (models.Meeting, error) {
	return insertRecord(ctx, g, gateway.TableMeetings, m.ID, m)
}

func (g *Client) UpdateMeeting(ctx context.Context, id string, patch gateway.Patch) (models.Meeting, error) {
	return updateRecord[models.Meeting](ctx, g, gateway.TableMeetings, id, patch)
}

func (g *Client) DeleteMeeting(ctx context.Context, id string) error {
	return g.deleteRecord(ctx, gateway.TableMeetings, id)
}

func (g *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	return listRecords[models.Task](ctx, g, gateway.TableTasks, nil, "created_at")
}

func (g *Client) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	return insertRecord(ctx, g, gateway.TableTasks, t.ID, t)
}

func (g *Client) UpdateTask(ctx context.Context, id string, patch gateway.Patch) (models.Task, error) {
	return updateRecord[models.Task](ctx, g, gateway.TableTasks, id, patch)
}

func (g *Client) DeleteTask(ctx context.Context, id string) error {
	return g.deleteRecord(ctx, gateway.TableTasks, id)
}

func (g *Client) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	filter := map[string]string{"user_id": userID}
	return listRecords[models.Notification](ctx, g, gateway.TableNotifications, filter, "created_at")
}

func (g *Client) MarkNotificationRead(ctx context.Context, id string) error {
	_, err := updateRecord[models.Notification](ctx, g, gateway.TableNotifications, id, gateway.Patch{"read": true})
	return err
}

func (g *Client) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return listRecords[models.Profile](ctx, g, gateway.TableProfiles, nil, "name")
}

func (g *Client) UpdateProfile(ctx context.Context, id string, patch gateway.Patch) (models.Profile, error) {
	return updateRecord[models.Profile](ctx, g, gateway.TableProfiles, id, patch)
}

func (g *Client) ListInvites(ctx context.Context) ([]models.Invite, error) {
	return listRecords[models.Invite](ctx, g, gateway.TableInvites, nil, "email")
}

func (g *Client) CreateInvite(ctx context.Context, inv models.Invite) (models.Invite, error) {
	return insertRecord(ctx, g, gateway.TableInvites, inv.ID, inv)
}

func (g *Client) DeleteInvite(ctx context.Context, id string) error {
	return g.deleteRecord(ctx, gateway.TableInvites, id)
}

func (g *Client) RecordAudit(ctx context.Context, rec models.AuditRecord) error {
	_, err := insertRecord(ctx, g, gateway.TableAuditLog, rec.ID, rec)
	return err
}

// Subscribe opens the change feed for a table. Events are delivered on the
// returned channel until the stop function is called or the stream breaks;
// either way the channel is closed. The stream for a given table is
// single-owner per session.
func (g *Client) Subscribe(ctx context.Context, table string, filter map[string]string) (<-chan models.ChangeEvent, func(), error) {

	ctx, cancel := context.WithCancel(ctx)

	req := &pb.SubscribeRequest{Table: table, Kind: pb.EventKind_EVENT_KIND_ALL, Filter: filter}

	stream, err := g.client.Subscribe(ctx, req)
	if err != nil {
		cancel()
		return nil, nil, g.mapError(err)
	}

	ch := make(chan models.ChangeEvent, 16)

	go func() {
		defer close(ch)
		for {
			ev, err := stream.Recv()
			if err != nil {
				// Teardown and clean shutdown are expected; anything else
				// means the feed silently stops until the next activation.
				if status.Code(err) != codes.Canceled && !errors.Is(err, io.EOF) {
					g.log.Warn(ctx, "change feed closed", "table", table, "error", err)
				}
				return
			}

			ce := models.ChangeEvent{Kind: eventKindFromProto(ev.GetKind()), Table: ev.GetTable()}
			if r := ev.GetNewRecord(); r != nil {
				ce.New = r.GetPayload()
			}
			if r := ev.GetOldRecord(); r != nil {
				ce.Old = r.GetPayload()
			}

			select {
			case ch <- ce:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, cancel, nil
}

func eventKindFromProto(k pb.EventKind) models.EventKind {
	switch k {
	case pb.EventKind_EVENT_KIND_INSERT:
		return models.EventInsert
	case pb.EventKind_EVENT_KIND_UPDATE:
		return models.EventUpdate
	case pb.EventKind_EVENT_KIND_DELETE:
		return models.EventDelete
	default:
		return ""
	}
}

func (g *Client) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return gateway.ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return gateway.ErrUnavailable
	case codes.NotFound:
		return gateway.ErrNotFound
	case codes.InvalidArgument:
		return gateway.ErrInvalidInput
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
