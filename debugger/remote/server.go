// This file is part of Gopher65C02.
//
// Gopher65C02 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65C02 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65C02.  If not, see <https://www.gnu.org/licenses/>.

package remote

import (
	"context"
	"net"
	"sync"

	"github.com/jetsetilly/gopher65c02/curated"
	"github.com/jetsetilly/gopher65c02/hardware"
	"github.com/jetsetilly/gopher65c02/hardware/cpu/execution"
	"github.com/jetsetilly/gopher65c02/hardware/memory"
	"github.com/jetsetilly/gopher65c02/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// DefaultAddress is the address the server listens on if no other address is
// specified.
const DefaultAddress = "localhost:6502"

// Server implements the RemoteServer interface for a Machine.
type Server struct {
	mu      sync.Mutex
	machine *hardware.Machine
	server  *grpc.Server
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer(machine *hardware.Machine) *Server {
	return &Server{
		machine: machine,
	}
}

// Serve accepts connections on the listener. It does not return until the
// listener fails or Stop() is called.
func (s *Server) Serve(lis net.Listener) error {
	s.mu.Lock()
	s.server = grpc.NewServer()
	RegisterRemoteServer(s.server, s)
	srv := s.server
	s.mu.Unlock()

	logger.Logf(logger.Allow, "remote", "listening on %s", lis.Addr())

	return srv.Serve(lis)
}

// ListenAndServe listens on the TCP address and then calls Serve().
func (s *Server) ListenAndServe(address string) error {
	if address == "" {
		address = DefaultAddress
	}

	lis, err := net.Listen("tcp", address)
	if err != nil {
		return curated.Errorf("remote: %v", err)
	}

	return s.Serve(lis)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() {
	s.mu.Lock()
	srv := s.server
	s.mu.Unlock()

	if srv != nil {
		srv.GracefulStop()
	}
}

// the state of the machine as a protobuf message. the caller must hold the
// critical section
func (s *Server) state() (*structpb.Struct, error) {
	st, err := stateFromMachine(s.machine).toStruct()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	return st, nil
}

// Reset implements the RemoteServer interface.
func (s *Server) Reset(_ context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.machine.Reset()
	return &emptypb.Empty{}, nil
}

// Load implements the RemoteServer interface.
func (s *Server) Load(_ context.Context, in *wrapperspb.BytesValue) (*emptypb.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.machine.LoadProgram(in.GetValue())
	if err != nil {
		if curated.Is(err, memory.ProgramTooLarge) {
			return nil, status.Errorf(codes.InvalidArgument, "%v", err)
		}
		return nil, status.Errorf(codes.Internal, "%v", err)
	}

	return &emptypb.Empty{}, nil
}

// Step implements the RemoteServer interface.
func (s *Server) Step(_ context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.machine.Step(nil)
	if err != nil {
		return nil, status.Errorf(codes.Aborted, "%v", err)
	}

	return s.state()
}

// Run implements the RemoteServer interface. The request is stopped if the
// context is cancelled before the machine halts.
func (s *Server) Run(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.machine.Run(func(_ execution.Result) error {
		return ctx.Err()
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, status.FromContextError(ctx.Err()).Err()
		}
		if curated.Is(err, hardware.InstructionLimit) {
			return nil, status.Errorf(codes.ResourceExhausted, "%v", err)
		}
		return nil, status.Errorf(codes.Aborted, "%v", err)
	}

	return s.state()
}

// Registers implements the RemoteServer interface.
func (s *Server) Registers(_ context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state()
}

// Peek implements the RemoteServer interface.
func (s *Server) Peek(_ context.Context, in *wrapperspb.UInt32Value) (*wrapperspb.UInt32Value, error) {
	if in.GetValue() > 0xffff {
		return nil, status.Errorf(codes.OutOfRange, "remote: address out of range (%#x)", in.GetValue())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return wrapperspb.UInt32(uint32(s.machine.Peek(uint16(in.GetValue())))), nil
}
