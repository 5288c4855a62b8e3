package tracking

import (
	"math"

	"tracker/landmarks"
)

type Expression string

const (
	ExpressionNeutral   Expression = "neutral"
	ExpressionHappy     Expression = "happy"
	ExpressionVeryHappy Expression = "very_happy"
	ExpressionSad       Expression = "sad"
	ExpressionSurprised Expression = "surprised"
	ExpressionAngry     Expression = "angry"
	ExpressionWink      Expression = "wink"
	ExpressionKiss      Expression = "kiss"
	ExpressionTongueOut Expression = "tongue_out"
	ExpressionThinking  Expression = "thinking"
	ExpressionSleepy    Expression = "sleepy"
	ExpressionConfused  Expression = "confused"
)

// Glyphs maps each expression to its display emoji.
var Glyphs = map[Expression]string{
	ExpressionNeutral:   "😐",
	ExpressionHappy:     "😊",
	ExpressionVeryHappy: "😄",
	ExpressionSad:       "😢",
	ExpressionSurprised: "😲",
	ExpressionAngry:     "😠",
	ExpressionWink:      "😉",
	ExpressionKiss:      "😘",
	ExpressionTongueOut: "😛",
	ExpressionThinking:  "🤔",
	ExpressionSleepy:    "😴",
	ExpressionConfused:  "😕",
}

// ExpressionResult is what one call to Analyze reports.
type ExpressionResult struct {
	Expression Expression `json:"expression"`
	Glyph      string     `json:"emoji"`
	Confidence float64    `json:"confidence"`
}

// metrics are the dimensionless facial ratios one frame reduces to.
// All values come from normalized coordinates, so they are independent
// of the video resolution.
type metrics struct {
	mouthOpenness float64
	smileLevel    float64
	eyebrowRaise  float64
	leftEyeOpen   float64
	rightEyeOpen  float64
	mouthWidth    float64
	lipsPucker    float64
	headTilt      float64
}

const tiltEpsilon = 1e-4

func extractMetrics(f landmarks.Frame) metrics {
	var m metrics

	outerGap := f.VerticalGap(landmarks.OuterLipTop, landmarks.OuterLipBottom)
	innerGap := f.VerticalGap(landmarks.InnerLipTop, landmarks.InnerLipBottom)
	m.mouthOpenness = (outerGap + innerGap) / 2

	m.mouthWidth = f.HorizontalSpan(landmarks.MouthCornerLeft, landmarks.MouthCornerRight)

	// Corners sitting above the lip center read as a positive smile.
	mouthCenterY := f.MidY(landmarks.UpperLipCenter, landmarks.LowerLipCenter)
	cornerY := f.MidY(landmarks.MouthCornerLeft, landmarks.MouthCornerRight)
	m.smileLevel = mouthCenterY - cornerY
	if m.mouthWidth > 0.15 {
		m.smileLevel += 0.02 // wide smiles get a bonus
	}

	left := f.BrowRaise(landmarks.LeftBrowInner, landmarks.LeftBrowMid, landmarks.LeftBrowOuter, landmarks.LeftEyeTop)
	right := f.BrowRaise(landmarks.RightBrowInner, landmarks.RightBrowMid, landmarks.RightBrowOuter, landmarks.RightEyeTop)
	m.eyebrowRaise = (left + right) / 2

	m.leftEyeOpen = f.EyeOpenness(landmarks.LeftEyeLidPairs)
	m.rightEyeOpen = f.EyeOpenness(landmarks.RightEyeLidPairs)

	lipMidX := f.MidX(landmarks.UpperLipCenter, landmarks.LowerLipCenter)
	cornerMidX := f.MidX(landmarks.MouthCornerLeft, landmarks.MouthCornerRight)
	m.lipsPucker = math.Abs(lipMidX - cornerMidX)

	leftEye := f[landmarks.LeftEyeOuter]
	rightEye := f[landmarks.RightEyeOuter]
	m.headTilt = (rightEye.Y - leftEye.Y) / (rightEye.X - leftEye.X + tiltEpsilon)

	return m
}

// expressionRule is one entry of the ordered decision table. Order is the
// priority: the first predicate that matches wins, so more specific
// expressions must stay above the broader ones they overlap with.
type expressionRule struct {
	expression Expression
	confidence float64
	match      func(m metrics) bool
}

var expressionRules = []expressionRule{
	{ExpressionWink, 0.85, func(m metrics) bool {
		asym := math.Abs(m.leftEyeOpen - m.rightEyeOpen)
		return asym > 0.012 && math.Min(m.leftEyeOpen, m.rightEyeOpen) < 0.015
	}},
	{ExpressionKiss, 0.80, func(m metrics) bool {
		return m.lipsPucker > 0.015 && m.mouthWidth < 0.12
	}},
	{ExpressionSurprised, 0.90, func(m metrics) bool {
		return m.mouthOpenness > 0.045 && m.eyebrowRaise > 0.035
	}},
	{ExpressionTongueOut, 0.75, func(m metrics) bool {
		return m.mouthOpenness > 0.05 && m.mouthWidth > 0.14 && m.smileLevel > 0.01
	}},
	{ExpressionVeryHappy, 0.90, func(m metrics) bool {
		return m.smileLevel > 0.045 && m.mouthWidth > 0.15
	}},
	{ExpressionHappy, 0.80, func(m metrics) bool {
		return m.smileLevel > 0.025
	}},
	{ExpressionSad, 0.70, func(m metrics) bool {
		return m.smileLevel < -0.015
	}},
	{ExpressionThinking, 0.65, func(m metrics) bool {
		return math.Abs(m.headTilt) > 0.03 && m.eyebrowRaise > 0.025 && m.eyebrowRaise < 0.04
	}},
	{ExpressionSleepy, 0.75, func(m metrics) bool {
		asym := math.Abs(m.leftEyeOpen - m.rightEyeOpen)
		return m.leftEyeOpen < 0.018 && m.rightEyeOpen < 0.018 && asym < 0.012
	}},
	{ExpressionConfused, 0.60, func(m metrics) bool {
		return m.eyebrowRaise > 0.02 && m.eyebrowRaise < 0.035 && math.Abs(m.smileLevel) < 0.01
	}},
	{ExpressionAngry, 0.70, func(m metrics) bool {
		return m.eyebrowRaise < 0.025 && m.smileLevel < 0.005 && m.mouthWidth < 0.13
	}},
	{ExpressionNeutral, 0.50, func(m metrics) bool {
		return true
	}},
}

func classifyMetrics(m metrics) (Expression, float64) {
	for _, rule := range expressionRules {
		if rule.match(m) {
			return rule.expression, rule.confidence
		}
	}
	return ExpressionNeutral, 0.5
}

// Analyzer classifies expressions frame by frame and smooths the output
// over time. Each tracked stream needs its own Analyzer: the rolling
// state below must never be shared between concurrent callers.
type Analyzer struct {
	lastExpression Expression
	stableCount    int
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{lastExpression: ExpressionNeutral}
}

// Analyze reduces one frame to metrics, runs the decision table and
// applies the stability filter before reporting.
//
// The filter commits the fresh label either after two repeats or as soon
// as it differs from the last committed one. The second condition makes
// the intended two-frame hold ineffective (a single differing frame
// already commits); kept as-is because clients calibrate against this
// exact switching behavior.
func (a *Analyzer) Analyze(frame landmarks.Frame) ExpressionResult {
	if !frame.Detected() {
		return ExpressionResult{
			Expression: ExpressionNeutral,
			Glyph:      Glyphs[ExpressionNeutral],
			Confidence: 0,
		}
	}

	fresh, confidence := classifyMetrics(extractMetrics(frame))

	if fresh == a.lastExpression {
		a.stableCount++
	} else {
		a.stableCount = 0
	}
	if a.stableCount >= 2 || fresh != a.lastExpression {
		a.lastExpression = fresh
	}

	return ExpressionResult{
		Expression: a.lastExpression,
		Glyph:      Glyphs[a.lastExpression],
		Confidence: confidence,
	}
}
