// Package insights carries the curated per-generation editorial
// summaries shown alongside the benchmark data.
package insights

import "qsbench/internal/models"

// Default returns the insight set for the generations with enough
// community data to summarize. The text is hand-written from analysis
// of the accumulated results, not derived at runtime.
func Default() []models.GenerationInsight {
	return []models.GenerationInsight{
		{
			Generation: 6,
			Headline:   "The Foundation of Modern Quick Sync",
			Summary:    "6th Gen Skylake introduced the refined Quick Sync 6.0 with improved HEVC decode support. With 64 benchmark results averaging 55 FPS, it represents the baseline for modern hardware encoding. Power efficiency data is limited but suggests reasonable consumption for its era.",
			Pros:       "Widely available in used market; Solid H.264 encoding; Good Linux support; Low power consumption",
			Cons:       "No HEVC encoding support; Lower FPS than newer generations; Limited to older codec profiles",
			BestFor:    "Budget builds focused on H.264 only; Legacy system upgrades; Low-power home servers",
			VsPrevious: "First generation recommended for modern Quick Sync usage. Earlier generations lack essential codec support.",
		},
		{
			Generation: 7,
			Headline:   "HEVC Encoding Arrives",
			Summary:    "7th Gen Kaby Lake was a game-changer, adding HEVC/H.265 8-bit hardware encoding. With 84 results averaging 65 FPS at ~9W, it offers an 18% performance boost over Skylake while maintaining excellent efficiency. This is the minimum recommended generation for HEVC workflows.",
			Pros:       "First gen with HEVC 8-bit encoding; Good power efficiency (~9W avg); Strong community benchmark data; Excellent value in used market",
			Cons:       "No HEVC 10-bit encoding; No VP9 encoding support; Showing age for 4K workflows",
			BestFor:    "Entry-level Plex/Jellyfin servers; Users needing HEVC on a budget; 1080p-focused transcoding",
			VsPrevious: "18% faster than 6th Gen with the critical addition of HEVC encoding. Worth the upgrade if HEVC is needed.",
		},
		{
			Generation: 8,
			Headline:   "The Sweet Spot for Value",
			Summary:    "8th Gen Coffee Lake remains extremely popular with 179 benchmark submissions - the most of any generation. Averaging 70 FPS at ~9W, it delivers consistent performance. The i5-8500 is particularly well-represented, suggesting strong community adoption for media servers.",
			Pros:       "Largest benchmark dataset (highest confidence); Excellent used market availability; Proven reliability; Great performance per dollar",
			Cons:       "Still limited to HEVC 8-bit; No 10-bit HDR encoding; Similar codec support to 7th Gen",
			BestFor:    "Dedicated Plex/Jellyfin servers; Multi-stream 1080p transcoding; Best value for most users",
			VsPrevious: "8% faster than 7th Gen with identical codec support. Worth it for the price/availability, but not a must-upgrade.",
		},
		{
			Generation: 9,
			Headline:   "Coffee Lake Refined",
			Summary:    "9th Gen Coffee Lake Refresh shows a notable jump to 89 FPS average - a 27% improvement over 8th Gen. With 30 results at ~10W, it maintains efficiency while boosting throughput. However, codec support remains unchanged from 7th/8th Gen.",
			Pros:       "Significant performance bump; Same great Coffee Lake reliability; Good for higher stream counts",
			Cons:       "Smaller benchmark dataset; Premium over 8th Gen may not justify; Same codec limitations",
			BestFor:    "Users needing more concurrent streams; Upgrading from 6th/7th Gen; High-traffic media servers",
			VsPrevious: "27% faster than 8th Gen but with identical codec support. Good upgrade path if streams are maxing out.",
		},
		{
			Generation: 10,
			Headline:   "Comet Lake Consistency",
			Summary:    "10th Gen Comet Lake delivers 83 FPS average across 99 submissions at ~8W. While slightly slower than 9th Gen in raw FPS, it offers excellent efficiency and represents the last generation before the major architectural shift to hybrid cores.",
			Pros:       "Strong efficiency (~8W average); Large dataset for confidence; Mature platform; Wide motherboard selection",
			Cons:       "No major codec improvements; Slightly lower peak FPS than 9th Gen; End of the pure P-core era",
			BestFor:    "Balanced performance and efficiency; Users wanting mature, stable platform; Pre-hybrid architecture preference",
			VsPrevious: "Similar to 9th Gen in performance. Choose based on platform availability and price rather than encoding capability.",
		},
		{
			Generation: 11,
			Headline:   "The Codec Revolution Begins",
			Summary:    "11th Gen Rocket Lake is transformative for codec support, adding HEVC 10-bit and VP9 encoding. With limited data (10 results, 80 FPS, ~5W), the efficiency gains are notable. This generation enables HDR content encoding for the first time.",
			Pros:       "HEVC 10-bit encoding (HDR support); VP9 encoding capability; Improved power efficiency; AV1 decode support",
			Cons:       "Limited benchmark data; Rocket Lake had mixed desktop reception; Higher idle power than predecessors",
			BestFor:    "HDR content creators; VP9/YouTube workflows; Users needing 10-bit HEVC encoding",
			VsPrevious: "Major codec upgrade over 10th Gen. Essential if you need HEVC 10-bit or VP9 encoding.",
		},
		{
			Generation: 12,
			Headline:   "Hybrid Architecture Excellence",
			Summary:    "12th Gen Alder Lake introduces the hybrid P-core/E-core architecture with impressive results: 90 FPS at just ~3W average across 30 submissions. The efficiency gains are remarkable while maintaining full codec support from 11th Gen.",
			Pros:       "Exceptional power efficiency (~3W avg); Strong performance (90 FPS); Modern platform with DDR5 option; Full codec support",
			Cons:       "Hybrid scheduling can be complex; Premium pricing; Overkill for basic transcoding",
			BestFor:    "New builds prioritizing efficiency; Users wanting latest platform features; Low-power server builds",
			VsPrevious: "13% faster than 11th Gen with dramatically better efficiency. Strong upgrade for power-conscious users.",
		},
		{
			Generation: 13,
			Headline:   "Raw Performance Leader",
			Summary:    "13th Gen Raptor Lake leads in raw performance at 124 FPS average, though with higher power draw (~39W). With only 5 results, data is limited but suggests this generation prioritizes throughput over efficiency. Best for maximum concurrent streams.",
			Pros:       "Highest FPS average; Maximum concurrent stream capacity; Full codec support; Strong single-thread performance",
			Cons:       "Higher power consumption; Limited benchmark data; May be overkill for most users; Premium cost",
			BestFor:    "High-demand media servers; Maximum concurrent transcodes; Users prioritizing raw speed over efficiency",
			VsPrevious: "38% faster than 12th Gen but at significantly higher power. Choose based on whether you need maximum throughput.",
		},
		{
			Generation: 14,
			Headline:   "Efficiency Optimized",
			Summary:    "14th Gen Raptor Lake Refresh shows 117 FPS at ~4W average across 5 results. While slightly slower than 13th Gen in peak FPS, the dramatic efficiency improvement suggests Intel optimized for power consumption. Same codec support as 12th/13th Gen.",
			Pros:       "Excellent efficiency (~4W avg); Near-flagship performance; Latest platform support; Strong value proposition",
			Cons:       "Very limited benchmark data; Minimal improvement over 13th Gen; No new codec features",
			BestFor:    "New builds wanting latest hardware; Balance of performance and efficiency; Future-proofing",
			VsPrevious: "6% slower than 13th Gen but dramatically more efficient. Better choice for most users unless maximum FPS is critical.",
		},
	}
}
