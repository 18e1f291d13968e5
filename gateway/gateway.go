// Package gateway exposes the API wrappers as read-only JSON routes on the
// HTTP facade.
package gateway

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/felsokning/codeninjas/apis/deutschewelle"
	"github.com/felsokning/codeninjas/apis/hackernews"
	"github.com/felsokning/codeninjas/apis/smhi"
	apperrors "github.com/felsokning/codeninjas/errors"
	"github.com/felsokning/codeninjas/httpclient"
	"github.com/felsokning/codeninjas/logger"
	"github.com/felsokning/codeninjas/server"
	"github.com/felsokning/codeninjas/validation"
)

// NewsSource is satisfied by *deutschewelle.Client.
type NewsSource interface {
	GetLatestNews(ctx context.Context, language deutschewelle.LanguageID) (*deutschewelle.SearchResult, error)
}

// WarningsSource is satisfied by *smhi.Client.
type WarningsSource interface {
	GetRecentWarnings(ctx context.Context) ([]smhi.WarningsResult, error)
}

// StorySource is satisfied by *hackernews.Client.
type StorySource interface {
	GetTopStories(ctx context.Context, count int) ([]hackernews.Story, error)
	ShowTopStories(ctx context.Context, count int) ([]hackernews.Story, error)
}

// Sources are the upstream clients. A nil source makes its routes answer 503.
type Sources struct {
	News     NewsSource
	Warnings WarningsSource
	Stories  StorySource
}

// Gateway serves the /v1 routes.
type Gateway struct {
	sources Sources
	log     *logger.Logger
}

// New creates a Gateway. log may be nil.
func New(sources Sources, log *logger.Logger) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{sources: sources, log: log.WithComponent("gateway")}
}

// Register mounts the routes on r.
func (g *Gateway) Register(r gin.IRouter) {
	v1 := r.Group("/v1")
	v1.GET("/dw/news", g.latestNews)
	v1.GET("/smhi/warnings", g.recentWarnings)
	v1.GET("/hackernews/top", g.topStories)
	v1.GET("/hackernews/show", g.showStories)
}

type newsQuery struct {
	Language string `form:"language" validate:"required"`
}

type storiesQuery struct {
	Count int `form:"count" validate:"gte=0,lte=500"`
}

func (g *Gateway) latestNews(c *gin.Context) {
	const op = "LatestNews"
	if g.sources.News == nil {
		g.fail(c, op, apperrors.Unavailable(deutschewelle.ClientName))
		return
	}

	var q newsQuery
	if err := bindQuery(c, &q); err != nil {
		g.fail(c, op, err)
		return
	}
	language, err := deutschewelle.ParseLanguage(q.Language)
	if err != nil {
		g.fail(c, op, apperrors.InvalidInput("language", err.Error()))
		return
	}

	result, err := g.sources.News.GetLatestNews(c.Request.Context(), language)
	if err != nil {
		g.fail(c, op, upstream(deutschewelle.ClientName, err))
		return
	}
	server.RespondOK(c, result)
}

func (g *Gateway) recentWarnings(c *gin.Context) {
	const op = "RecentWarnings"
	if g.sources.Warnings == nil {
		g.fail(c, op, apperrors.Unavailable(smhi.ClientName))
		return
	}

	warnings, err := g.sources.Warnings.GetRecentWarnings(c.Request.Context())
	if err != nil {
		g.fail(c, op, upstream(smhi.ClientName, err))
		return
	}
	server.RespondList(c, warnings)
}

func (g *Gateway) topStories(c *gin.Context) {
	g.stories(c, "TopStories", StorySource.GetTopStories)
}

func (g *Gateway) showStories(c *gin.Context) {
	g.stories(c, "ShowStories", StorySource.ShowTopStories)
}

type storyList func(StorySource, context.Context, int) ([]hackernews.Story, error)

func (g *Gateway) stories(c *gin.Context, op string, list storyList) {
	if g.sources.Stories == nil {
		g.fail(c, op, apperrors.Unavailable(hackernews.ClientName))
		return
	}

	var q storiesQuery
	if err := bindQuery(c, &q); err != nil {
		g.fail(c, op, err)
		return
	}

	stories, err := list(g.sources.Stories, c.Request.Context(), q.Count)
	if err != nil {
		g.fail(c, op, upstream(hackernews.ClientName, err))
		return
	}
	server.RespondList(c, stories)
}

func (g *Gateway) fail(c *gin.Context, op string, err error) {
	g.log.WithContext(c.Request.Context()).ErrorOp(op, "Request failed", err)
	server.RespondWithError(c, err)
}

// bindQuery decodes and validates the query string into q.
func bindQuery(c *gin.Context, q any) error {
	if err := c.ShouldBindQuery(q); err != nil {
		return apperrors.Validation(err.Error())
	}
	return validation.Validate(q)
}

// upstream maps HTTP boundary failures to a 502. Local failures such as an
// unsupported language keep their own status.
func upstream(service string, err error) error {
	se, ok := httpclient.IsStatusError(err)
	if !ok {
		return err
	}
	return apperrors.Upstream(service, se.URL, se.StatusCode, se)
}
