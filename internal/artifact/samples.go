package artifact

// Samples is a small built-in artifact set used when sample-data mode is
// enabled, so the scan flow can be exercised without a reachable backend.
var Samples = []Details{
	{
		Title:        "Carthaginian Mask",
		Period:       "Punic Period (814-146 BCE)",
		Description:  "A ceremonial mask used in religious rituals by the Carthaginians, featuring distinctive facial features and symbolic decorations.",
		Significance: "These masks played a crucial role in Carthaginian religious ceremonies, particularly in worship of their primary deity Baal Hammon.",
		Location:     "Carthage, Tunis Governorate",
		Confidence:   0.92,
	},
	{
		Title:        "Roman Mosaic",
		Period:       "Roman Period (146 BCE-439 CE)",
		Description:  "A detailed floor mosaic depicting scenes from daily life and mythology, created using small colored stones or glass fragments.",
		Significance: "Roman mosaics in Tunisia represent some of the finest examples in the Mediterranean, showcasing the region's prosperity during Roman rule.",
		Location:     "Bardo National Museum, Tunis",
		Confidence:   0.88,
	},
	{
		Title:        "Aghlabid Coin",
		Period:       "Aghlabid Dynasty (800-909 CE)",
		Description:  "A gold dinar featuring Arabic calligraphy and Islamic symbols, minted during the Aghlabid dynasty's rule of Ifriqiya.",
		Significance: "These coins demonstrate the economic strength of the Aghlabid emirate and the spread of Islamic culture in North Africa.",
		Location:     "Kairouan, Kairouan Governorate",
		Confidence:   0.85,
	},
	{
		Title:        "Berber Pottery",
		Period:       "Various periods (ancient to modern)",
		Description:  "Hand-crafted ceramic vessel with geometric patterns typical of Berber artistic traditions, used for storing water or grain.",
		Significance: "Berber pottery represents one of the oldest continuous craft traditions in North Africa, with techniques passed down through generations.",
		Location:     "Sejnane, Bizerte Governorate",
		Confidence:   0.89,
	},
}
