package service

import (
	"errors"
	"sync"
	"time"

	"lingua_tutor_backend/internal/adaptive"
	"lingua_tutor_backend/internal/config"
	"lingua_tutor_backend/internal/model"
	"lingua_tutor_backend/internal/repository"
	"lingua_tutor_backend/pkg/logger"
	"lingua_tutor_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MasteryService 把练习观测批量作用到掌握度记录上。
// 同一用户的读-改-写全程持有该用户的互斥锁，跨用户互不竞争。
type MasteryService struct {
	skillRepo    *repository.SkillRecordRepository
	activityRepo *repository.ActivityRepository
	db           *gorm.DB

	tuningMu sync.RWMutex
	tuning   adaptive.Tuning

	userLocks sync.Map // user_id -> *sync.Mutex
}

func NewMasteryService(
	skillRepo *repository.SkillRecordRepository,
	activityRepo *repository.ActivityRepository,
	db *gorm.DB,
	cfg config.AdaptiveConfig,
) *MasteryService {
	return &MasteryService{
		skillRepo:    skillRepo,
		activityRepo: activityRepo,
		db:           db,
		tuning:       adaptive.TuningFromConfig(cfg),
	}
}

// UpdateTuning 配置热加载回调
func (s *MasteryService) UpdateTuning(cfg config.AdaptiveConfig) {
	s.tuningMu.Lock()
	s.tuning = adaptive.TuningFromConfig(cfg)
	s.tuningMu.Unlock()
}

func (s *MasteryService) Tuning() adaptive.Tuning {
	s.tuningMu.RLock()
	defer s.tuningMu.RUnlock()
	return s.tuning
}

func (s *MasteryService) lockUser(userID string) *sync.Mutex {
	v, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// BatchResult 一个批次的应用结果
type BatchResult struct {
	Applied []model.SkillOut `json:"applied"`
	Stale   []string         `json:"stale"` // 因乱序被拒绝的 skill_id
}

// ApplyObservations 把一个聊天回合提取出的全部观测作为一个逻辑批次应用：
// 整批在一个事务里提交，乱序观测跳过并记录，其余照常生效；
// 分钟数的换算策略归调用方所有，这里只接收数值。
func (s *MasteryService) ApplyObservations(
	userID, context string,
	observations []model.Observation,
	minutes, turns int,
) (*BatchResult, error) {
	mu := s.lockUser(userID)
	mu.Lock()
	defer mu.Unlock()

	tuning := s.Tuning()
	result := &BatchResult{Applied: []model.SkillOut{}, Stale: []string{}}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		skillRepo := s.skillRepo.WithTx(tx)
		activityRepo := s.activityRepo.WithTx(tx)

		for _, obs := range observations {
			if !obs.Outcome.Valid() {
				return errors.New("invalid outcome for skill " + obs.SkillID)
			}

			rec, err := skillRepo.FindByUserAndSkill(userID, obs.SkillID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				rec = adaptive.NewRecord(userID, obs.SkillID, tuning)
			} else if err != nil {
				return err
			}

			if err := adaptive.Apply(rec, obs.Outcome, obs.OccurredAt, tuning); err != nil {
				if errors.Is(err, adaptive.ErrStaleObservation) {
					logger.Log.Warn("stale observation rejected",
						zap.String("userId", userID),
						zap.String("skillId", obs.SkillID),
						zap.Time("occurredAt", obs.OccurredAt),
					)
					monitoring.StaleObservationCounter.Inc()
					result.Stale = append(result.Stale, obs.SkillID)
					continue
				}
				return err
			}

			if err := skillRepo.Upsert(rec); err != nil {
				return err
			}
			monitoring.ObservationCounter.WithLabelValues(string(obs.Outcome)).Inc()
			result.Applied = append(result.Applied, model.SkillView(rec))
		}

		// 每次交互追加一条时长流水
		if minutes > 0 || turns > 0 {
			return activityRepo.Append(&model.ActivityLog{
				UserID:  userID,
				Context: context,
				Minutes: minutes,
				Turns:   turns,
				Ts:      time.Now(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListSkills 用户全部掌握度记录
func (s *MasteryService) ListSkills(userID string) ([]model.SkillOut, error) {
	recs, err := s.skillRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.SkillOut, 0, len(recs))
	for i := range recs {
		out = append(out, model.SkillView(&recs[i]))
	}
	return out, nil
}
