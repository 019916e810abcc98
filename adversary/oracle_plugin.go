// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package adversary

import (
	"context"

	"github.com/ava-labs/avasim/adversary/oracleproto"
	"github.com/ava-labs/avasim/ids"
	"github.com/ava-labs/avasim/snow/consensus/snowball"
	goplugin "github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
)

// Handshake pins the plugin protocol so a mismatched policy-server
// build fails fast at Dispense time rather than through a confusing
// wire error (mirrors the teacher's own out-of-process VM handshake).
var Handshake = goplugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "AVASIM_ORACLE_PLUGIN",
	MagicCookieValue: "action-oracle",
}

// GRPCPlugin adapts an ActionOracle to go-plugin's gRPC plugin
// interface, so the policy network (out of scope, spec.md §1) can run
// as a separate process the simulator core only ever talks to through
// this boundary.
type GRPCPlugin struct {
	goplugin.Plugin
	Impl ActionOracle
}

// GRPCServer registers Impl as the oracle service on the plugin's
// gRPC server, called inside the policy-server process.
func (p *GRPCPlugin) GRPCServer(_ *goplugin.GRPCBroker, s *grpc.Server) error {
	oracleproto.RegisterActionOracleServer(s, &oracleServer{impl: p.Impl})
	return nil
}

// GRPCClient returns a client-side ActionOracle talking to the
// policy-server process over conn, called inside the simulator
// process.
func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *goplugin.GRPCBroker, conn *grpc.ClientConn) (interface{}, error) {
	return &PluginOracle{client: oracleproto.NewActionOracleClient(conn)}, nil
}

// oracleServer adapts an in-process ActionOracle to the generated
// gRPC server interface.
type oracleServer struct {
	impl ActionOracle
}

func (s *oracleServer) PickAction(_ context.Context, req *oracleproto.PickActionRequest) (*oracleproto.PickActionResponse, error) {
	red, err := s.impl.PickAction(&wireSnapshot{req: req}, ids.ID(req.FromId))
	if err != nil {
		return nil, err
	}
	return &oracleproto.PickActionResponse{Red: red}, nil
}

// PluginOracle is the client-side ActionOracle that forwards
// PickAction calls to an out-of-process policy server over gRPC.
type PluginOracle struct {
	client oracleproto.ActionOracleClient
}

// PickAction implements ActionOracle by serializing snapshot onto the
// wire and calling the remote policy process.
func (o *PluginOracle) PickAction(snapshot Snapshot, fromID ids.ID) (bool, error) {
	honestIDs := snapshot.HonestIDs()
	req := &oracleproto.PickActionRequest{
		FromId:    uint64(fromID),
		HonestIds: make([]uint64, len(honestIDs)),
		Colors:    make([]int32, len(honestIDs)),
		Finished:  make([]bool, len(honestIDs)),
	}
	for i, id := range honestIDs {
		req.HonestIds[i] = uint64(id)
		req.Colors[i] = int32(snapshot.Color(id))
		req.Finished[i] = snapshot.IsFinished(id)
	}

	resp, err := o.client.PickAction(context.Background(), req)
	if err != nil {
		return false, err
	}
	return resp.Red, nil
}

// wireSnapshot reconstructs a Snapshot from a received
// PickActionRequest, so a server-side ActionOracle implementation can
// be written against the same Snapshot interface the in-process
// strategies use.
type wireSnapshot struct {
	req *oracleproto.PickActionRequest
}

func (w *wireSnapshot) Color(id ids.ID) snowball.Color {
	for i, hid := range w.req.HonestIds {
		if ids.ID(hid) == id {
			return snowball.Color(w.req.Colors[i])
		}
	}
	return snowball.Unknown
}

func (w *wireSnapshot) IsFinished(id ids.ID) bool {
	for i, hid := range w.req.HonestIds {
		if ids.ID(hid) == id {
			return w.req.Finished[i]
		}
	}
	return false
}

func (w *wireSnapshot) HonestIDs() []ids.ID {
	out := make([]ids.ID, len(w.req.HonestIds))
	for i, hid := range w.req.HonestIds {
		out[i] = ids.ID(hid)
	}
	return out
}
