// Package revision 实现修订快照应用服务
package revision

import (
	"context"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"docgen-ai-api/internal/domain/entity"
	"docgen-ai-api/internal/domain/repository"
	"docgen-ai-api/pkg/errors"
	"docgen-ai-api/pkg/logger"
)

// Service 修订快照服务
//
// 快照记录项目大纲的完整有序内容，修订号在项目内单调递增。
// 快照创建后不可变，差异与恢复都基于已落库的快照。
type Service struct {
	tx        repository.Transactor
	revisions repository.RevisionRepository
	configs   repository.ConfigRepository
	sections  repository.SectionRepository
	slides    repository.SlideRepository
}

// NewService 创建修订快照服务
func NewService(tx repository.Transactor, revisions repository.RevisionRepository, configs repository.ConfigRepository, sections repository.SectionRepository, slides repository.SlideRepository) *Service {
	return &Service{
		tx:        tx,
		revisions: revisions,
		configs:   configs,
		sections:  sections,
		slides:    slides,
	}
}

// Snapshot 为项目创建一个新的修订快照
func (s *Service) Snapshot(ctx context.Context, project *entity.Project, userID string) (*entity.Revision, error) {
	snapshot, err := s.buildSnapshot(ctx, project)
	if err != nil {
		return nil, err
	}

	var revision *entity.Revision
	// 取号与落库同一事务，防止并发快照撞号
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		number, err := s.revisions.NextNumber(ctx, project.ID)
		if err != nil {
			return err
		}
		revision = entity.NewRevision(project.ID, number, snapshot, userID)
		return s.revisions.Create(ctx, revision)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create revision: %w", err)
	}

	logger.Info(ctx, "修订快照已创建", "project_id", project.ID, "revision", revision.RevisionNumber)
	return revision, nil
}

// List 按修订号倒序获取项目修订列表
func (s *Service) List(ctx context.Context, projectID string, pagination repository.Pagination) (*repository.PagedResult[*entity.Revision], error) {
	return s.revisions.ListByProject(ctx, projectID, pagination)
}

// Diff 计算两个快照之间的 RFC 7386 merge patch
func (s *Service) Diff(ctx context.Context, projectID string, from, to int) (json.RawMessage, error) {
	fromRev, err := s.revisions.GetByNumber(ctx, projectID, from)
	if err != nil {
		return nil, err
	}
	toRev, err := s.revisions.GetByNumber(ctx, projectID, to)
	if err != nil {
		return nil, err
	}
	if fromRev == nil || toRev == nil {
		return nil, errors.ErrRevisionNotFound
	}

	fromDoc, err := json.Marshal(fromRev.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	toDoc, err := json.Marshal(toRev.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	patch, err := jsonpatch.CreateMergePatch(fromDoc, toDoc)
	if err != nil {
		return nil, fmt.Errorf("failed to compute merge patch: %w", err)
	}
	return patch, nil
}

// Restore 将快照内容写回大纲
// 按条目 ID 匹配，快照之后被删除的条目跳过，返回恢复的条目数。
func (s *Service) Restore(ctx context.Context, project *entity.Project, number int) (int, error) {
	revision, err := s.revisions.GetByNumber(ctx, project.ID, number)
	if err != nil {
		return 0, err
	}
	if revision == nil || revision.Snapshot == nil {
		return 0, errors.ErrRevisionNotFound
	}

	existing, err := s.outlineIDs(ctx, project)
	if err != nil {
		return 0, err
	}

	restored := 0
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		for _, item := range revision.Snapshot.Items {
			if !existing[item.ID] {
				continue
			}
			var err error
			if project.IsWord() {
				err = s.sections.UpdateContent(ctx, item.ID, item.Content, item.IsGenerated)
			} else {
				err = s.slides.UpdateContent(ctx, item.ID, item.Content, item.IsGenerated)
			}
			if err != nil {
				return err
			}
			restored++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to restore revision: %w", err)
	}

	logger.Info(ctx, "修订快照已恢复", "project_id", project.ID, "revision", number, "restored", restored)
	return restored, nil
}

// buildSnapshot 采集项目当前的大纲内容
func (s *Service) buildSnapshot(ctx context.Context, project *entity.Project) (*entity.RevisionSnapshot, error) {
	snapshot := &entity.RevisionSnapshot{Kind: project.Kind}

	config, err := s.configs.GetByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	if config != nil {
		snapshot.Context = config.Context
	}

	if project.IsWord() {
		sections, err := s.sections.ListByProject(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		for _, section := range sections {
			snapshot.Items = append(snapshot.Items, entity.RevisionItem{
				ID:          section.ID,
				Title:       section.Title,
				Content:     section.ContentText(),
				OrderIndex:  section.OrderIndex,
				IsGenerated: section.IsGenerated,
			})
		}
		return snapshot, nil
	}

	slides, err := s.slides.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	for _, slide := range slides {
		snapshot.Items = append(snapshot.Items, entity.RevisionItem{
			ID:          slide.ID,
			Title:       slide.Title,
			Content:     slide.ContentText(),
			OrderIndex:  slide.OrderIndex,
			IsGenerated: slide.IsGenerated,
		})
	}
	return snapshot, nil
}

// outlineIDs 当前大纲条目 ID 集合
func (s *Service) outlineIDs(ctx context.Context, project *entity.Project) (map[string]bool, error) {
	ids := make(map[string]bool)
	if project.IsWord() {
		sections, err := s.sections.ListByProject(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		for _, section := range sections {
			ids[section.ID] = true
		}
		return ids, nil
	}

	slides, err := s.slides.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	for _, slide := range slides {
		ids[slide.ID] = true
	}
	return ids, nil
}
