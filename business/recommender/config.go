package recommender

// ScoringWeights blends the four sub-scores into the total. The
// defaults sum to 1.0 but the engine never renormalizes; callers own
// the mix.
type ScoringWeights struct {
	Reward       float64
	Feature      float64
	Promotion    float64
	AnnualFeeROI float64
}

type Config struct {
	Weights ScoringWeights

	// BestCaseRewardRate is the assumed ceiling (in percent) used to
	// normalize the reward score: earning it across the whole monthly
	// spend scores 100.
	BestCaseRewardRate float64

	// ROITargetRate is the net return-on-spend (in percent) that maps
	// to a perfect annual-fee ROI score.
	ROITargetRate float64

	// DefaultLimit is used when a request asks for <= 0 results.
	DefaultLimit int

	// MaxReasons caps the explanation list per recommendation.
	MaxReasons int
}

const (
	defaultWeightReward       = 0.40
	defaultWeightFeature      = 0.25
	defaultWeightPromotion    = 0.15
	defaultWeightAnnualFeeROI = 0.20

	defaultBestCaseRewardRate = 5.0
	defaultROITargetRate      = 5.0
	defaultLimit              = 5
	defaultMaxReasons         = 5

	// Sub-score thresholds and caps used by reason generation and the
	// promotion score.
	freeCardROIScore       = 80.0
	neutralFeatureScore    = 50.0
	promotionRateCap       = 10.0
	promotionPointValue    = 5.0
	highRatePromoThreshold = 3.0
	rewardReasonThreshold  = 70.0
	roiReasonThreshold     = 60.0
)

func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		Reward:       defaultWeightReward,
		Feature:      defaultWeightFeature,
		Promotion:    defaultWeightPromotion,
		AnnualFeeROI: defaultWeightAnnualFeeROI,
	}
}

func DefaultConfig() Config {
	return Config{
		Weights:            DefaultWeights(),
		BestCaseRewardRate: defaultBestCaseRewardRate,
		ROITargetRate:      defaultROITargetRate,
		DefaultLimit:       defaultLimit,
		MaxReasons:         defaultMaxReasons,
	}
}

// withDefaults fills zero-valued knobs so a partially built Config
// behaves sensibly.
func (c Config) withDefaults() Config {
	zero := ScoringWeights{}
	if c.Weights == zero {
		c.Weights = DefaultWeights()
	}
	if c.BestCaseRewardRate <= 0 {
		c.BestCaseRewardRate = defaultBestCaseRewardRate
	}
	if c.ROITargetRate <= 0 {
		c.ROITargetRate = defaultROITargetRate
	}
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = defaultLimit
	}
	if c.MaxReasons <= 0 {
		c.MaxReasons = defaultMaxReasons
	}
	return c
}
