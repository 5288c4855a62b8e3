package landmarks

// MediaPipe FaceMesh landmark indices for the facial features the
// classifiers read. Named here so the geometry code never carries
// bare numbers.
const (
	NoseTip       = 1
	Chin          = 152
	LeftEyeOuter  = 33
	RightEyeOuter = 263

	UpperLipCenter   = 0
	LowerLipCenter   = 17
	MouthCornerLeft  = 61
	MouthCornerRight = 291

	// Outer and inner lip gap pairs, top/bottom.
	OuterLipTop    = 13
	OuterLipBottom = 14
	InnerLipTop    = 12
	InnerLipBottom = 15

	// Eyebrow sample points, inner to outer, plus the eye-top point the
	// raise is measured against.
	LeftBrowInner  = 70
	LeftBrowMid    = 63
	LeftBrowOuter  = 105
	LeftEyeTop     = 159
	RightBrowInner = 300
	RightBrowMid   = 293
	RightBrowOuter = 334
	RightEyeTop    = 386
)

// Eyelid top/bottom pairs used for eye openness, four per side.
var (
	LeftEyeLidPairs = [4][2]int{
		{159, 145},
		{158, 153},
		{160, 144},
		{157, 154},
	}
	RightEyeLidPairs = [4][2]int{
		{386, 374},
		{385, 380},
		{387, 373},
		{384, 381},
	}
)
