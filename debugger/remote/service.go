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

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the full name of the gRPC service.
const ServiceName = "gopher65c02.Remote"

// RemoteServer is the server API for the gopher65c02.Remote service.
type RemoteServer interface {
	Reset(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Load(context.Context, *wrapperspb.BytesValue) (*emptypb.Empty, error)
	Step(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Run(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Registers(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Peek(context.Context, *wrapperspb.UInt32Value) (*wrapperspb.UInt32Value, error)
}

func method(name string) string {
	return "/" + ServiceName + "/" + name
}

// unary creates a grpc.MethodHandler for a RemoteServer function.
func unary[Req any, Resp any](name string, call func(RemoteServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return call(srv.(RemoteServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method(name),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(RemoteServer), ctx, req.(*Req))
		}

		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc is the grpc.ServiceDesc for the gopher65c02.Remote service.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RemoteServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Reset",
			Handler:    unary("Reset", RemoteServer.Reset),
		},
		{
			MethodName: "Load",
			Handler:    unary("Load", RemoteServer.Load),
		},
		{
			MethodName: "Step",
			Handler:    unary("Step", RemoteServer.Step),
		},
		{
			MethodName: "Run",
			Handler:    unary("Run", RemoteServer.Run),
		},
		{
			MethodName: "Registers",
			Handler:    unary("Registers", RemoteServer.Registers),
		},
		{
			MethodName: "Peek",
			Handler:    unary("Peek", RemoteServer.Peek),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gopher65c02/remote.proto",
}

// RegisterRemoteServer registers the implementation with the grpc.Server.
func RegisterRemoteServer(s grpc.ServiceRegistrar, srv RemoteServer) {
	s.RegisterService(&ServiceDesc, srv)
}
