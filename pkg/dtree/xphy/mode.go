package xphy

import "fmt"

// Mode 表示 MAC 控制器与 PHY 之间的电气/协议接口模式。
// 数值即模式表索引，作为对外表示使用，跨版本稳定。
type Mode int

// 已知接口模式。表只允许追加，不得重排。
const (
	// ModeNA 表示未指定（表项为空串，属性值为空串时命中）。
	ModeNA Mode = iota
	// ModeInternal MAC 与 PHY 同片内部连接。
	ModeInternal
	// ModeMII Media Independent Interface。
	ModeMII
	// ModeGMII Gigabit MII。
	ModeGMII
	// ModeSGMII Serial GMII。
	ModeSGMII
	// ModeTBI Ten Bit Interface。
	ModeTBI
	// ModeRevMII Reverse MII。
	ModeRevMII
	// ModeRMII Reduced MII。
	ModeRMII
	// ModeRGMII Reduced GMII。
	ModeRGMII
	// ModeRGMIIID RGMII，收发两侧均加内部延迟。
	ModeRGMIIID
	// ModeRGMIIRXID RGMII，仅接收侧内部延迟。
	ModeRGMIIRXID
	// ModeRGMIITXID RGMII，仅发送侧内部延迟。
	ModeRGMIITXID
	// ModeRTBI Reduced TBI。
	ModeRTBI
	// ModeSMII Serial MII。
	ModeSMII
	// ModeXGMII 10 Gigabit MII。
	ModeXGMII
	// ModeMoCA Multimedia over Coax。
	ModeMoCA
	// ModeQSGMII Quad SGMII。
	ModeQSGMII
	// ModeTRGMII Turbo RGMII。
	ModeTRGMII
	// Mode1000BaseX 1000BASE-X。
	Mode1000BaseX
	// Mode2500BaseX 2500BASE-X。
	Mode2500BaseX
	// ModeRXAUI Reduced XAUI。
	ModeRXAUI
	// ModeXAUI 10 Gigabit Attachment Unit Interface。
	ModeXAUI
	// Mode10GKR 10GBASE-KR。
	Mode10GKR
	// ModeUSXGMII Universal Serial 10GE MII。
	ModeUSXGMII
)

// modeNames 是按 [Mode] 索引排列的接口模式名表。
// 进程级不可变常量，只读共享，无初始化顺序问题。
var modeNames = [...]string{
	ModeNA:        "",
	ModeInternal:  "internal",
	ModeMII:       "mii",
	ModeGMII:      "gmii",
	ModeSGMII:     "sgmii",
	ModeTBI:       "tbi",
	ModeRevMII:    "rev-mii",
	ModeRMII:      "rmii",
	ModeRGMII:     "rgmii",
	ModeRGMIIID:   "rgmii-id",
	ModeRGMIIRXID: "rgmii-rxid",
	ModeRGMIITXID: "rgmii-txid",
	ModeRTBI:      "rtbi",
	ModeSMII:      "smii",
	ModeXGMII:     "xgmii",
	ModeMoCA:      "moca",
	ModeQSGMII:    "qsgmii",
	ModeTRGMII:    "trgmii",
	Mode1000BaseX: "1000base-x",
	Mode2500BaseX: "2500base-x",
	ModeRXAUI:     "rxaui",
	ModeXAUI:      "xaui",
	Mode10GKR:     "10gbase-kr",
	ModeUSXGMII:   "usxgmii",
}

// String 返回模式的表内名称。
// 超出表范围的值返回 "mode(<n>)" 形式。
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// IsValid 报告 m 是否为表内的已知模式（含 ModeNA）。
func (m Mode) IsValid() bool {
	return m >= 0 && int(m) < len(modeNames)
}

// Modes 返回接口模式名表的副本，按索引排列。
func Modes() []string {
	out := make([]string, len(modeNames))
	copy(out, modeNames[:])
	return out
}
