// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "EngDrill"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort  = ":8080"
	DefaultLogLevel    = "info"
	DefaultSQLitePath  = "eng_drill.db"
	DefaultSessionSize = 10  // 1セッションの出題数
	DefaultMCQCount    = 6   // うち選択式の上限
	DefaultBlankCount  = 4   // うち穴埋めの上限
	DefaultDueShare    = 0.6 // セッション中の復習期限到来項目の割合
	DefaultDueLimit    = 50  // 期限到来クエリの取得上限
)
