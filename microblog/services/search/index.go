package search

import (
	"microblog/microblog/sources/psql/models"
	"strconv"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
)

// PostDocument is the slice of a post the index sees. The database row stays
// the record of truth; the index only has to answer "which post ids match".
type PostDocument struct {
	Body     string `json:"body"`
	Nickname string `json:"nickname"`
}

type Index struct {
	idx bleve.Index
}

// Open opens the index at path, creating it on first run.
func Open(path string) (*Index, error) {
	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(path, buildMapping())
	}
	if err != nil {
		return nil, err
	}
	return &Index{idx: idx}, nil
}

// NewMemOnly builds a throwaway in-memory index for tests and seeding runs.
func NewMemOnly() (*Index, error) {
	idx, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, err
	}
	return &Index{idx: idx}, nil
}

func buildMapping() *mapping.IndexMappingImpl {
	post := bleve.NewDocumentMapping()
	post.AddFieldMappingsAt("body", bleve.NewTextFieldMapping())
	post.AddFieldMappingsAt("nickname", bleve.NewTextFieldMapping())

	m := bleve.NewIndexMapping()
	m.AddDocumentMapping("post", post)
	m.DefaultType = "post"
	return m
}

func (i *Index) IndexPost(post *models.Post, authorNickname string) error {
	return i.idx.Index(strconv.Itoa(post.ID), PostDocument{
		Body:     post.Body,
		Nickname: authorNickname,
	})
}

// Search runs a query-string query and returns matching post ids in rank
// order. Callers load the rows themselves.
func (i *Index) Search(q string, limit, offset int) ([]int, error) {
	query := bleve.NewQueryStringQuery(q)
	req := bleve.NewSearchRequestOptions(query, limit, offset, false)
	res, err := i.idx.Search(req)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(res.Hits))
	for _, hit := range res.Hits {
		id, err := strconv.Atoi(hit.ID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (i *Index) Close() error {
	return i.idx.Close()
}
