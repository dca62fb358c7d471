package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bobmcallan/reddable-mcp/internal/client"
	"github.com/bobmcallan/reddable-mcp/internal/common"
)

const tracerName = "github.com/bobmcallan/reddable-mcp/internal/mcp"

// ErrUnknownTool is returned by Validate for a name outside the catalog.
var ErrUnknownTool = errors.New("unknown tool")

// AdsAPI is the upstream surface the tools delegate to.
type AdsAPI interface {
	GetAdAccounts(ctx context.Context, businessID string) (any, error)
	GetFundingInstruments(ctx context.Context, adAccountID string) (any, error)
	GetCampaigns(ctx context.Context, adAccountID string) (any, error)
	GetAdGroups(ctx context.Context, adAccountID string) (any, error)
	GetProfiles(ctx context.Context, adAccountID string) (any, error)
	GetPosts(ctx context.Context, profileID string) (any, error)
	GetPost(ctx context.Context, postID string) (any, error)
	GetAds(ctx context.Context, adAccountID string) (any, error)
	CreateCampaign(ctx context.Context, req client.CreateCampaignRequest) (any, error)
	CreateAdGroup(ctx context.Context, req client.CreateAdGroupRequest) (any, error)
	CreatePost(ctx context.Context, req client.CreatePostRequest) (any, error)
	CreateAd(ctx context.Context, req client.CreateAdRequest) (any, error)
	GenerateImage(ctx context.Context, req client.GenerateImageRequest) (any, error)
}

var _ AdsAPI = (*client.AdsClient)(nil)

// toolSpec describes one tool in terms of its typed arguments.
type toolSpec[A any] struct {
	tool     mcp.Tool
	defaults func(A) A
	invoke   func(api AdsAPI, ctx context.Context, args A) (any, error)
	success  func(args A) func(any) *mcp.CallToolResult
	failure  func(error) string
}

// toolDef is a tool with its compiled schema and type-erased pipeline.
type toolDef struct {
	tool   mcp.Tool
	schema *jsonschema.Schema
	bind   func(data []byte) (any, error)
	run    func(ctx context.Context, api AdsAPI, args any) *mcp.CallToolResult
}

func define[A any](spec toolSpec[A]) (*toolDef, error) {
	schema, err := compileSchema(spec.tool)
	if err != nil {
		return nil, err
	}
	return &toolDef{
		tool:   spec.tool,
		schema: schema,
		bind: func(data []byte) (any, error) {
			var args A
			if err := json.Unmarshal(data, &args); err != nil {
				return nil, err
			}
			return spec.defaults(args), nil
		},
		run: func(ctx context.Context, api AdsAPI, args any) *mcp.CallToolResult {
			typed := args.(A)
			body, err := spec.invoke(api, ctx, typed)
			return shape(body, err, spec.success(typed), spec.failure)
		},
	}, nil
}

// always ignores the arguments when formatting a success.
func always[A any](f func(any) *mcp.CallToolResult) func(A) func(any) *mcp.CallToolResult {
	return func(A) func(any) *mcp.CallToolResult { return f }
}

func catalog() ([]*toolDef, error) {
	builders := []func() (*toolDef, error){
		func() (*toolDef, error) {
			return define(toolSpec[BusinessArgs]{
				tool:     getAdAccountsTool(),
				defaults: noDefaults[BusinessArgs],
				invoke: func(api AdsAPI, ctx context.Context, a BusinessArgs) (any, error) {
					return api.GetAdAccounts(ctx, a.BusinessID)
				},
				success: always[BusinessArgs](dump),
				failure: failedTo("fetching ad accounts"),
			})
		},
		accountTool(getFundingInstrumentsTool(), AdsAPI.GetFundingInstruments, dump, "fetching funding instruments"),
		accountTool(getCampaignsTool(), AdsAPI.GetCampaigns, dump, "fetching campaigns"),
		accountTool(getAdGroupsTool(), AdsAPI.GetAdGroups, dump, "fetching ad groups"),
		accountTool(getProfilesTool(), AdsAPI.GetProfiles, dump, "fetching profiles"),
		func() (*toolDef, error) {
			return define(toolSpec[ProfileArgs]{
				tool:     getPostsTool(),
				defaults: noDefaults[ProfileArgs],
				invoke: func(api AdsAPI, ctx context.Context, a ProfileArgs) (any, error) {
					return api.GetPosts(ctx, a.ProfileID)
				},
				success: always[ProfileArgs](dump),
				failure: failedTo("fetching posts"),
			})
		},
		func() (*toolDef, error) {
			return define(toolSpec[PostArgs]{
				tool:     getPostTool(),
				defaults: noDefaults[PostArgs],
				invoke: func(api AdsAPI, ctx context.Context, a PostArgs) (any, error) {
					return api.GetPost(ctx, a.PostID)
				},
				success: func(a PostArgs) func(any) *mcp.CallToolResult { return postOrNotFound(a.PostID) },
				failure: failedTo("fetching post"),
			})
		},
		accountTool(getAdsTool(), AdsAPI.GetAds, adsFound, "getting ads"),
		func() (*toolDef, error) {
			return define(toolSpec[client.CreateCampaignRequest]{
				tool:     createCampaignTool(),
				defaults: campaignDefaults,
				invoke:   AdsAPI.CreateCampaign,
				success:  always[client.CreateCampaignRequest](created("campaign")),
				failure:  failedTo("creating campaign"),
			})
		},
		func() (*toolDef, error) {
			return define(toolSpec[client.CreateAdGroupRequest]{
				tool:     createAdGroupTool(),
				defaults: adGroupDefaults,
				invoke:   AdsAPI.CreateAdGroup,
				success:  always[client.CreateAdGroupRequest](created("ad group")),
				failure:  failedTo("creating ad group"),
			})
		},
		func() (*toolDef, error) {
			return define(toolSpec[client.CreatePostRequest]{
				tool:     createPostTool(),
				defaults: postDefaults,
				invoke:   AdsAPI.CreatePost,
				success:  always[client.CreatePostRequest](created("post")),
				failure:  failedTo("creating post"),
			})
		},
		func() (*toolDef, error) {
			return define(toolSpec[client.CreateAdRequest]{
				tool:     createAdTool(),
				defaults: noDefaults[client.CreateAdRequest],
				invoke:   AdsAPI.CreateAd,
				success:  always[client.CreateAdRequest](created("ad")),
				failure:  failedTo("creating ad"),
			})
		},
		func() (*toolDef, error) {
			return define(toolSpec[client.GenerateImageRequest]{
				tool:     generateImageTool(),
				defaults: imageDefaults,
				invoke:   AdsAPI.GenerateImage,
				success: func(a client.GenerateImageRequest) func(any) *mcp.CallToolResult {
					return imageGenerated(a.Style)
				},
				failure: imageFailed,
			})
		},
	}

	defs := make([]*toolDef, 0, len(builders))
	for _, build := range builders {
		def, err := build()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// accountTool builds a read tool keyed by adAccountId.
func accountTool(
	tool mcp.Tool,
	call func(AdsAPI, context.Context, string) (any, error),
	success func(any) *mcp.CallToolResult,
	phrase string,
) func() (*toolDef, error) {
	return func() (*toolDef, error) {
		return define(toolSpec[AdAccountArgs]{
			tool:     tool,
			defaults: noDefaults[AdAccountArgs],
			invoke: func(api AdsAPI, ctx context.Context, a AdAccountArgs) (any, error) {
				return call(api, ctx, a.AdAccountID)
			},
			success: always[AdAccountArgs](success),
			failure: failedTo(phrase),
		})
	}
}

// Registry holds the tool catalog and dispatches invocations to the upstream API.
// It is immutable after construction and safe for concurrent use.
type Registry struct {
	api    AdsAPI
	logger *common.Logger
	tracer trace.Tracer
	order  []string
	tools  map[string]*toolDef
}

// Option configures a Registry.
type Option func(*Registry)

// WithTracer sets the tracer used for per-invocation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Registry) {
		r.tracer = tracer
	}
}

// NewRegistry builds the catalog and compiles every input schema.
func NewRegistry(api AdsAPI, logger *common.Logger, opts ...Option) (*Registry, error) {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	defs, err := catalog()
	if err != nil {
		return nil, err
	}
	r := &Registry{
		api:    api,
		logger: logger,
		tracer: otel.Tracer(tracerName),
		tools:  make(map[string]*toolDef, len(defs)),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, def := range defs {
		if _, dup := r.tools[def.tool.Name]; dup {
			return nil, errors.Newf("duplicate tool %q", def.tool.Name)
		}
		r.tools[def.tool.Name] = def
		r.order = append(r.order, def.tool.Name)
	}
	return r, nil
}

// Tools returns the published tool definitions in catalog order.
func (r *Registry) Tools() []mcp.Tool {
	tools := make([]mcp.Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name].tool)
	}
	return tools
}

// Validate checks raw arguments against the tool's schema and returns the
// typed arguments with defaults applied. It has no side effects.
func (r *Registry) Validate(name string, raw map[string]any) (any, error) {
	def, ok := r.tools[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTool, "%s", name)
	}
	return def.validate(raw)
}

func (d *toolDef) validate(raw map[string]any) (any, error) {
	data, doc, err := normalize(raw)
	if err != nil {
		return nil, argumentError(d.tool.Name, err)
	}
	if err := d.schema.Validate(doc); err != nil {
		return nil, argumentError(d.tool.Name, err)
	}
	args, err := d.bind(data)
	if err != nil {
		return nil, argumentError(d.tool.Name, err)
	}
	return args, nil
}

// Call runs one invocation end to end and always returns an envelope.
func (r *Registry) Call(ctx context.Context, name string, raw map[string]any) (result *mcp.CallToolResult) {
	correlationID := common.CorrelationID(ctx)
	if correlationID == "" {
		correlationID = uuid.NewString()
		ctx = common.WithCorrelationID(ctx, correlationID)
	}
	logger := r.logger.WithCorrelationId(correlationID)

	ctx, span := r.tracer.Start(ctx, "tool/"+name,
		trace.WithAttributes(attribute.String("mcp.tool.name", name)))
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().
				Str("tool", name).
				Str("panic", fmt.Sprint(rec)).
				Msg("tool handler panicked")
			result = errorResult(fmt.Sprintf("Error: internal failure in %s", name))
		}
		span.SetAttributes(attribute.Bool("mcp.tool.is_error", result.IsError))
		if result.IsError {
			span.SetStatus(codes.Error, firstText(result))
		}
		span.End()
	}()

	def, ok := r.tools[name]
	if !ok {
		logger.Warn().Str("tool", name).Msg("unknown tool")
		return errorResult(fmt.Sprintf("Unknown tool: %s", name))
	}

	logger.Debug().Str("tool", name).Msg("tool call")

	args, err := def.validate(raw)
	if err != nil {
		logger.Warn().Str("tool", name).Err(err).Msg("arguments rejected")
		return errorResult(err.Error())
	}

	result = def.run(ctx, r.api, args)
	if result.IsError {
		logger.Warn().Str("tool", name).Str("result", firstText(result)).Msg("tool call failed")
	}
	return result
}

// Handler adapts Call to an mcp-go tool handler.
func (r *Registry) Handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, ok := request.Params.Arguments.(map[string]any)
		if !ok && request.Params.Arguments != nil {
			return errorResult(fmt.Sprintf("Invalid arguments for %s: arguments: expected an object", name)), nil
		}
		return r.Call(ctx, name, raw), nil
	}
}

// Register adds every tool to s.
func (r *Registry) Register(s *server.MCPServer) {
	for _, name := range r.order {
		s.AddTool(r.tools[name].tool, r.Handler(name))
	}
}

// NewServer builds an MCP server exposing the registry's tools.
func NewServer(r *Registry, name, version string) *server.MCPServer {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	r.Register(s)
	return s
}

func firstText(result *mcp.CallToolResult) string {
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}
