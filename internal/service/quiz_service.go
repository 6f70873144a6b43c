// internal/service/quiz_service.go
package service

import (
	"context"
	"math"
	"time"

	"go_5_eng_drill/internal/config"
	"go_5_eng_drill/internal/middleware"
	"go_5_eng_drill/internal/model"
	"go_5_eng_drill/internal/repository"
	"go_5_eng_drill/internal/testgen"

	"gorm.io/gorm"
)

// QuizService は出題セッションを構成します。
type QuizService interface {
	ComposeSession(ctx context.Context, req *model.SessionRequest) ([]*model.Question, error)
}

type quizService struct {
	db          *gorm.DB
	wordRepo    repository.WordRepository
	grammarRepo repository.GrammarRepository
	attemptRepo repository.AttemptRepository
	stateRepo   repository.ReviewStateRepository
	gen         *testgen.Generator
	cfg         *config.Config
}

func NewQuizService(
	db *gorm.DB,
	wordRepo repository.WordRepository,
	grammarRepo repository.GrammarRepository,
	attemptRepo repository.AttemptRepository,
	stateRepo repository.ReviewStateRepository,
	gen *testgen.Generator,
	cfg *config.Config,
) QuizService {
	return &quizService{
		db:          db,
		wordRepo:    wordRepo,
		grammarRepo: grammarRepo,
		attemptRepo: attemptRepo,
		stateRepo:   stateRepo,
		gen:         gen,
		cfg:         cfg,
	}
}

// ComposeSession はモードと種別に応じて固定長の出題列を組み立てます。
// カタログが空・不足の場合はエラーにせず、組めた分だけ (0件を含む) 返します。
func (s *quizService) ComposeSession(ctx context.Context, req *model.SessionRequest) ([]*model.Question, error) {
	kind, err := model.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}
	mode, err := model.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}

	if mode == model.ModeReviewWrong {
		if req.DeviceID == "" {
			return nil, model.NewAppError("DEVICE_ID_REQUIRED", "reviewWrongモードにはdevice_idが必要です。", "device_id", model.ErrInvalidInput)
		}
		return s.composeReviewWrong(ctx, req.DeviceID, kind, req.Level)
	}

	if kind == model.KindVocab {
		return s.composeMixedVocab(ctx, req.DeviceID, req.Level)
	}
	return s.composeMixedGrammar(ctx, req.DeviceID, req.Level)
}

// composeReviewWrong は過去の不正解をそのまま再出題します。
// 出題元ごとに最新の1件だけを採り、選択肢の再生成は行いません。
func (s *quizService) composeReviewWrong(ctx context.Context, deviceID string, kind model.Kind, level string) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx).With("device_id", deviceID, "kind", kind)

	attempts, err := s.attemptRepo.FindWrongByDevice(ctx, s.db, deviceID, kind, level)
	if err != nil {
		logger.Error("Failed to find wrong attempts for replay", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "間違いノートの取得に失敗しました。", "", model.ErrInternalServer)
	}

	total := s.cfg.Quiz.SessionSize
	seen := make(map[string]struct{}, len(attempts))
	questions := make([]*model.Question, 0, total)
	for _, attempt := range attempts {
		if _, ok := seen[attempt.SourceID]; ok {
			continue
		}
		seen[attempt.SourceID] = struct{}{}

		questions = append(questions, &model.Question{
			ID:          attempt.QuestionID,
			Kind:        attempt.Kind,
			Type:        attempt.QuestionType,
			Level:       attempt.Level,
			Prompt:      attempt.Prompt,
			Choices:     attempt.Choices,
			Answer:      attempt.Answer,
			Explanation: attempt.Explanation,
			Source: model.QuestionSource{
				ID: attempt.SourceID,
			},
		})
		if len(questions) >= total {
			break
		}
	}

	logger.Info("Composed reviewWrong session", "count", len(questions))
	return questions, nil
}

func (s *quizService) composeMixedVocab(ctx context.Context, deviceID, level string) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx).With("kind", model.KindVocab)
	now := time.Now()

	catalog, err := s.loadVocabCatalog(ctx, deviceID, level)
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return []*model.Question{}, nil
	}

	// 期限到来の状態をカタログ内の単語に解決する (期限の古い順を維持)
	byID := make(map[string]*model.Word, len(catalog))
	for _, w := range catalog {
		byID[w.WordID] = w
	}
	var dueOrdered []*model.Word
	dueIDSet := make(map[string]struct{})
	if deviceID != "" {
		dueStates, err := s.stateRepo.FindDue(ctx, s.db, deviceID, model.KindVocab, level, now, s.cfg.Quiz.DueLimit)
		if err != nil {
			logger.Error("Failed to find due states", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態の取得に失敗しました。", "", model.ErrInternalServer)
		}
		for _, st := range dueStates {
			dueIDSet[st.SourceID] = struct{}{}
			if w, ok := byID[st.SourceID]; ok {
				dueOrdered = append(dueOrdered, w)
			}
		}
	}

	selected := blendSelection(catalog, dueOrdered, dueIDSet, s.cfg.Quiz.SessionSize, s.cfg.Quiz.DueShare,
		func(w *model.Word) string { return w.WordID })

	stateMap, err := s.annotationMap(ctx, deviceID, model.KindVocab, idsOf(selected, func(w *model.Word) string { return w.WordID }))
	if err != nil {
		logger.Error("Failed to load review states for annotation", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態の取得に失敗しました。", "", model.ErrInternalServer)
	}

	mcqItems, blankItems := splitByType(selected, s.cfg.Quiz.MCQCount, s.cfg.Quiz.BlankCount,
		func(w *model.Word) string { return w.WordID })

	questions := make([]*model.Question, 0, len(mcqItems)+len(blankItems))
	for _, w := range mcqItems {
		q := s.gen.VocabMCQ(w, catalog)
		q.ReviewState = stateMap[w.WordID]
		questions = append(questions, q)
	}
	for _, w := range blankItems {
		q := s.gen.VocabBlank(w)
		q.ReviewState = stateMap[w.WordID]
		questions = append(questions, q)
	}

	questions = testgen.Shuffle(questions)
	if len(questions) > s.cfg.Quiz.SessionSize {
		questions = questions[:s.cfg.Quiz.SessionSize]
	}

	logger.Info("Composed mixed vocab session", "count", len(questions), "due", len(dueOrdered))
	return questions, nil
}

func (s *quizService) composeMixedGrammar(ctx context.Context, deviceID, level string) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx).With("kind", model.KindGrammar)
	now := time.Now()

	catalog, err := s.loadGrammarCatalog(ctx, deviceID, level)
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return []*model.Question{}, nil
	}

	byID := make(map[string]*model.GrammarTopic, len(catalog))
	for _, t := range catalog {
		byID[t.TopicID] = t
	}
	var dueOrdered []*model.GrammarTopic
	dueIDSet := make(map[string]struct{})
	if deviceID != "" {
		dueStates, err := s.stateRepo.FindDue(ctx, s.db, deviceID, model.KindGrammar, level, now, s.cfg.Quiz.DueLimit)
		if err != nil {
			logger.Error("Failed to find due states", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態の取得に失敗しました。", "", model.ErrInternalServer)
		}
		for _, st := range dueStates {
			dueIDSet[st.SourceID] = struct{}{}
			if t, ok := byID[st.SourceID]; ok {
				dueOrdered = append(dueOrdered, t)
			}
		}
	}

	selected := blendSelection(catalog, dueOrdered, dueIDSet, s.cfg.Quiz.SessionSize, s.cfg.Quiz.DueShare,
		func(t *model.GrammarTopic) string { return t.TopicID })

	stateMap, err := s.annotationMap(ctx, deviceID, model.KindGrammar, idsOf(selected, func(t *model.GrammarTopic) string { return t.TopicID }))
	if err != nil {
		logger.Error("Failed to load review states for annotation", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態の取得に失敗しました。", "", model.ErrInternalServer)
	}

	mcqItems, blankItems := splitByType(selected, s.cfg.Quiz.MCQCount, s.cfg.Quiz.BlankCount,
		func(t *model.GrammarTopic) string { return t.TopicID })

	questions := make([]*model.Question, 0, len(mcqItems)+len(blankItems))
	for _, t := range mcqItems {
		q := s.gen.GrammarMCQ(t, catalog)
		q.ReviewState = stateMap[t.TopicID]
		questions = append(questions, q)
	}
	for _, t := range blankItems {
		q := s.gen.GrammarBlank(t)
		q.ReviewState = stateMap[t.TopicID]
		questions = append(questions, q)
	}

	questions = testgen.Shuffle(questions)
	if len(questions) > s.cfg.Quiz.SessionSize {
		questions = questions[:s.cfg.Quiz.SessionSize]
	}

	logger.Info("Composed mixed grammar session", "count", len(questions), "due", len(dueOrdered))
	return questions, nil
}

// loadVocabCatalog はレベルで絞った単語カタログから、このデバイスが習得済みの項目を除いて返します。
func (s *quizService) loadVocabCatalog(ctx context.Context, deviceID, level string) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)

	words, err := s.wordRepo.FindAll(ctx, s.db, level)
	if err != nil {
		logger.Error("Failed to load word catalog", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語カタログの取得に失敗しました。", "", model.ErrInternalServer)
	}
	if deviceID == "" {
		return words, nil
	}

	masteredIDs, err := s.stateRepo.FindMasteredSourceIDs(ctx, s.db, deviceID, model.KindVocab, level)
	if err != nil {
		logger.Error("Failed to load mastered source IDs", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習得状態の取得に失敗しました。", "", model.ErrInternalServer)
	}
	return excludeByID(words, masteredIDs, func(w *model.Word) string { return w.WordID }), nil
}

func (s *quizService) loadGrammarCatalog(ctx context.Context, deviceID, level string) ([]*model.GrammarTopic, error) {
	logger := middleware.GetLogger(ctx)

	topics, err := s.grammarRepo.FindAll(ctx, s.db, level)
	if err != nil {
		logger.Error("Failed to load grammar catalog", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "文法カタログの取得に失敗しました。", "", model.ErrInternalServer)
	}
	if deviceID == "" {
		return topics, nil
	}

	masteredIDs, err := s.stateRepo.FindMasteredSourceIDs(ctx, s.db, deviceID, model.KindGrammar, level)
	if err != nil {
		logger.Error("Failed to load mastered source IDs", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習得状態の取得に失敗しました。", "", model.ErrInternalServer)
	}
	return excludeByID(topics, masteredIDs, func(t *model.GrammarTopic) string { return t.TopicID }), nil
}

// annotationMap は選択済み項目の現在の復習状態の要約マップを返します。deviceIDが空ならnilです。
func (s *quizService) annotationMap(ctx context.Context, deviceID string, kind model.Kind, sourceIDs []string) (map[string]*model.ReviewStateBrief, error) {
	if deviceID == "" || len(sourceIDs) == 0 {
		return nil, nil
	}
	states, err := s.stateRepo.FindBySourceIDs(ctx, s.db, deviceID, kind, sourceIDs)
	if err != nil {
		return nil, err
	}
	m := make(map[string]*model.ReviewStateBrief, len(states))
	for _, st := range states {
		m[st.SourceID] = &model.ReviewStateBrief{
			IsMastered:   st.IsMastered,
			NextReviewAt: st.NextReviewAt,
		}
	}
	return m, nil
}

// blendSelection は期限到来分を先頭に据えたうえで
// 未選択かつ期限未到来の項目からランダムに埋め、それでも足りなければ
// 残り全体からのフォールバック抽出でセッション長まで埋めます。
func blendSelection[T any](catalog, dueOrdered []T, dueIDSet map[string]struct{}, total int, dueShare float64, idOf func(T) string) []T {
	dueTarget := int(math.Round(float64(total) * dueShare))
	selected := dueOrdered
	if len(selected) > dueTarget {
		selected = selected[:dueTarget]
	}
	selected = append([]T{}, selected...)

	selectedIDs := make(map[string]struct{}, len(selected))
	for _, item := range selected {
		selectedIDs[idOf(item)] = struct{}{}
	}

	if len(selected) < total {
		randomPool := make([]T, 0, len(catalog))
		for _, item := range catalog {
			id := idOf(item)
			if _, ok := selectedIDs[id]; ok {
				continue
			}
			if _, ok := dueIDSet[id]; ok {
				continue
			}
			randomPool = append(randomPool, item)
		}
		for _, item := range testgen.RandomSample(randomPool, total-len(selected)) {
			selected = append(selected, item)
			selectedIDs[idOf(item)] = struct{}{}
		}
	}

	if len(selected) < total {
		// 期限到来だが未選択の項目も戻してフォールバック抽出
		fallbackPool := make([]T, 0, len(catalog))
		for _, item := range catalog {
			if _, ok := selectedIDs[idOf(item)]; !ok {
				fallbackPool = append(fallbackPool, item)
			}
		}
		for _, item := range testgen.RandomSample(fallbackPool, total-len(selected)) {
			selected = append(selected, item)
			selectedIDs[idOf(item)] = struct{}{}
		}
	}

	if len(selected) > total {
		selected = selected[:total]
	}
	return selected
}

// splitByType は選択済み項目を選択式グループと穴埋めグループにランダムに分けます。
// 残りが穴埋め枠より少ない場合は全体から再抽出します。
func splitByType[T any](selected []T, mcqCount, blankCount int, idOf func(T) string) (mcqItems, blankItems []T) {
	mcqTarget := mcqCount
	if mcqTarget > len(selected) {
		mcqTarget = len(selected)
	}
	mcqItems = testgen.RandomSample(selected, mcqTarget)

	mcqIDs := make(map[string]struct{}, len(mcqItems))
	for _, item := range mcqItems {
		mcqIDs[idOf(item)] = struct{}{}
	}
	remaining := make([]T, 0, len(selected))
	for _, item := range selected {
		if _, ok := mcqIDs[idOf(item)]; !ok {
			remaining = append(remaining, item)
		}
	}

	blankTarget := blankCount
	if blankTarget > len(selected)-len(mcqItems) {
		blankTarget = len(selected) - len(mcqItems)
	}
	pool := remaining
	if len(remaining) < blankTarget {
		pool = selected
	}
	blankItems = testgen.RandomSample(pool, blankTarget)
	return mcqItems, blankItems
}

func excludeByID[T any](items []T, excludeIDs []string, idOf func(T) string) []T {
	if len(excludeIDs) == 0 {
		return items
	}
	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := excluded[idOf(item)]; !ok {
			out = append(out, item)
		}
	}
	return out
}

func idsOf[T any](items []T, idOf func(T) string) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, idOf(item))
	}
	return ids
}
