package es

import (
	"context"
	"errors"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/versiontype"
	"github.com/goccy/go-json"

	"github.com/pramanandasarkar02/toolsai/internal/pkg/consts"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/util"
)

const MaxSearchDepth = 400

type ModelRepo interface {
	SearchModels(ctx context.Context, queryText string, tagSlug string, from, size int) ([]*ModelES, error)
	GetSuggestions(ctx context.Context, keyword string) ([]string, error)
	IndexModel(ctx context.Context, m *ModelES, version int64) error
	DeleteModel(ctx context.Context, id uint64) error
}

type ModelRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewModelRepo(client *elasticsearch.TypedClient) ModelRepo {
	return &ModelRepoImpl{client: client}
}

func (s *ModelRepoImpl) SearchModels(ctx context.Context, queryText string, tagSlug string, from, size int) ([]*ModelES, error) {
	if from >= MaxSearchDepth {
		return []*ModelES{}, nil
	}

	boolQuery := &types.BoolQuery{
		Filter: []types.Query{
			{Term: map[string]types.TermQuery{"model_status": {Value: consts.ModelStatusActive}}},
		},
	}

	if queryText != "" {
		boolQuery.Must = append(boolQuery.Must, types.Query{
			MultiMatch: &types.MultiMatchQuery{
				Query:     queryText,
				Fields:    []string{"model_name^3", "description", "tags^2", "organization_name"},
				Fuzziness: util.PtrStr("AUTO"),
			},
		})
	}

	if tagSlug != "" {
		boolQuery.Filter = append(boolQuery.Filter, types.Query{
			Term: map[string]types.TermQuery{"tags": {Value: tagSlug}},
		})
	}

	req := s.client.Search().
		Index(ModelIndex).
		Query(&types.Query{Bool: boolQuery}).
		From(from).
		Size(size)

	// Unfiltered browse falls back to recency ordering.
	if queryText == "" {
		req.Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
			"created_at": {Order: &sortorder.Desc},
		}})
	}

	return s.executeSearch(ctx, req)
}

func (s *ModelRepoImpl) GetSuggestions(ctx context.Context, keyword string) ([]string, error) {
	suggestKey := "model-suggest"

	suggester := types.NewSuggester()
	suggester.Suggesters[suggestKey] = types.FieldSuggester{
		Prefix: &keyword,
		Completion: &types.CompletionSuggester{
			Field: "model_name.suggestion",
			Fuzzy: &types.SuggestFuzziness{
				Fuzziness: util.PtrStr("AUTO"),
			},
			Size: util.PtrInt(5),
		},
	}

	res, err := s.client.Search().
		Index(ModelIndex).
		Suggest(suggester).
		Size(0).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := make([]string, 0)
	if results, ok := res.Suggest[suggestKey]; ok {
		for _, r := range results {
			if cs, ok := r.(*types.CompletionSuggest); ok {
				for _, opt := range cs.Options {
					suggestions = append(suggestions, opt.Text)
				}
			}
		}
	}
	return suggestions, nil
}

func (s *ModelRepoImpl) IndexModel(ctx context.Context, m *ModelES, version int64) error {
	docID := strconv.FormatUint(m.ID, 10)

	_, err := s.client.Index(ModelIndex).
		Id(docID).
		Document(m).
		Version(strconv.FormatInt(version, 10)).
		VersionType(versiontype.External).
		Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == ConflictCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *ModelRepoImpl) DeleteModel(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)

	_, err := s.client.Delete(ModelIndex, docID).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *ModelRepoImpl) executeSearch(ctx context.Context, req *search.Search) ([]*ModelES, error) {
	resp, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*ModelES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		if hit.Source_ == nil {
			continue
		}
		var m ModelES
		if err = json.Unmarshal(hit.Source_, &m); err != nil {
			continue
		}
		if m.Tags == nil {
			m.Tags = make([]string, 0)
		}
		results = append(results, &m)
	}
	return results, nil
}
