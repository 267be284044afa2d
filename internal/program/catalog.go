package program

var catalog = []Phase{
	{
		ID:       1,
		Name:     "Phase 1",
		Subtitle: "Calm things down and restore basic movement",
		Weeks:    "Weeks 1-2",
		Emoji:    "🌱",
		Color:    "#4A9B8E",
		Sessions: []Session{
			{
				Name:  "Morning mobility",
				Emoji: "🌅",
				Exercises: []Exercise{
					{
						ID:   "p1-pelvic-tilt",
						Name: "Pelvic Tilt",
						Sets: 2,
						Reps: "10",
						Tip:  "Flatten your lower back into the floor, hold two seconds, release slowly.",
					},
					{
						ID:   "p1-cat-cow",
						Name: "Cat Stretch",
						Sets: 2,
						Reps: "8-10",
						Tip:  "Move one vertebra at a time and stay inside a pain-free range.",
					},
					{
						ID:   "p1-knee-to-chest",
						Name: "Knee To Chest",
						Sets: 2,
						Reps: "30s",
						Tip:  "Pull gently, keep the other leg relaxed on the floor.",
					},
				},
			},
			{
				Name:  "Evening activation",
				Emoji: "🌙",
				Exercises: []Exercise{
					{
						ID:   "p1-glute-bridge",
						Name: "Glute Bridge",
						Sets: 3,
						Reps: "10",
						Tip:  "Drive through the heels and stop when your hips line up with your knees.",
					},
					{
						ID:   "p1-bird-dog",
						Name: "Bird Dog",
						Sets: 2,
						Reps: "6 each side",
						Tip:  "Keep the pelvis level as if balancing a cup of water on your back.",
					},
					{
						ID:   "p1-dead-bug",
						Name: "Dead Bug",
						Sets: 2,
						Reps: "8",
						Tip:  "Exhale as the limbs lower and keep the ribs down.",
					},
				},
			},
		},
	},
	{
		ID:       2,
		Name:     "Phase 2",
		Subtitle: "Build tolerance with a rotating daily draw",
		Weeks:    "Weeks 3-5",
		Emoji:    "🔁",
		Color:    "#E8A838",
		Sessions: []Session{
			{
				Name:  "Daily draw",
				Emoji: "🎲",
			},
		},
		BonusPool: []Exercise{
			{
				ID:   "p2-side-plank",
				Name: "Side Plank",
				Sets: 3,
				Reps: "20-30s",
				Tip:  "Stack the shoulders and push the floor away.",
			},
			{
				ID:   "p2-clam",
				Name: "Clam Shell",
				Sets: 3,
				Reps: "12-15",
				Tip:  "Keep the heels together and do not roll the pelvis back.",
			},
			{
				ID:   "p2-single-leg-bridge",
				Name: "Single Leg Glute Bridge",
				Sets: 3,
				Reps: "8 each side",
				Tip:  "Hips stay square; lower slowly over three seconds.",
			},
			{
				ID:   "p2-goblet-squat",
				Name: "Goblet Squat",
				Sets: 3,
				Reps: "10",
				Tip:  "Light weight, chest tall, sit between the heels.",
			},
			{
				ID:   "p2-step-up",
				Name: "Step-up with Knee Raise",
				Sets: 3,
				Reps: "8 each side",
				Tip:  "Use a low step and control the way down.",
			},
			{
				ID:   "p2-band-pull-apart",
				Name: "Band Pull Apart",
				Sets: 3,
				Reps: "15",
				Tip:  "Squeeze the shoulder blades without shrugging.",
			},
			{
				ID:   "p2-hip-hinge",
				Name: "Romanian Deadlift",
				Sets: 3,
				Reps: "10",
				Tip:  "Dowel or light bar only; hinge until you feel the hamstrings.",
			},
			{
				ID:   "p2-pallof-press",
				Name: "Pallof Press",
				Sets: 3,
				Reps: "10 each side",
				Tip:  "Resist the rotation; the band should not pull you around.",
			},
			{
				ID:   "p2-superman",
				Name: "Superman",
				Sets: 2,
				Reps: "10",
				Tip:  "Lift only a few centimetres and keep the neck long.",
			},
			{
				ID:   "p2-wall-sit",
				Name: "Wall Sit",
				Sets: 3,
				Reps: "30s",
				Tip:  "Knees over the ankles, back flat on the wall.",
			},
		},
	},
	{
		ID:       3,
		Name:     "Phase 3",
		Subtitle: "Progressive strength",
		Weeks:    "Weeks 6-9",
		Emoji:    "💪",
		Color:    "#C94F4F",
		Sessions: []Session{
			{
				Name:  "Lower body",
				Emoji: "🦵",
				Exercises: []Exercise{
					{
						ID:   "p3-split-squat",
						Name: "Split Squat",
						Sets: 3,
						Reps: "8-10",
						Tip:  "Front shin stays vertical, drop the back knee straight down.",
					},
					{
						ID:   "p3-rdl",
						Name: "Romanian Deadlift",
						Sets: 3,
						Reps: "8",
						Tip:  "Add load only when the last rep looks like the first.",
					},
					{
						ID:   "p3-hip-thrust",
						Name: "Barbell Hip Thrust",
						Sets: 3,
						Reps: "10",
						Tip:  "Chin tucked, ribs down, full lockout at the top.",
					},
				},
			},
			{
				Name:  "Trunk",
				Emoji: "🧱",
				Exercises: []Exercise{
					{
						ID:   "p3-suitcase-carry",
						Name: "Suitcase Carry",
						Sets: 3,
						Reps: "30m",
						Tip:  "Walk tall; do not lean toward the weight.",
					},
					{
						ID:   "p3-plank",
						Name: "Plank",
						Sets: 3,
						Reps: "45s",
						Tip:  "Squeeze the glutes and breathe behind the brace.",
					},
					{
						ID:   "p3-back-extension",
						Name: "Hyperextensions (Back Extensions)",
						Sets: 3,
						Reps: "12",
						Tip:  "Hinge at the hips and stop at a neutral spine.",
					},
				},
			},
		},
	},
	{
		ID:       4,
		Name:     "Phase 4",
		Subtitle: "Return to normal training",
		Weeks:    "Week 10+",
		Emoji:    "🏁",
		Color:    "#6C63FF",
		Sessions: []Session{
			{
				Name:  "Full body",
				Emoji: "🏋️",
				Exercises: []Exercise{
					{
						ID:   "p4-deadlift",
						Name: "Barbell Deadlift",
						Sets: 4,
						Reps: "5",
						Tip:  "Build up over weeks; stop any set that changes shape.",
					},
					{
						ID:   "p4-front-squat",
						Name: "Front Squat",
						Sets: 4,
						Reps: "6",
						Tip:  "Elbows high and a big breath before each rep.",
					},
					{
						ID:   "p4-farmer-walk",
						Name: "Farmer's Walk",
						Sets: 3,
						Reps: "40m",
						Tip:  "Heavy but upright; short quick steps.",
					},
					{
						ID:   "p4-ab-rollout",
						Name: "Ab Roller",
						Sets: 3,
						Reps: "8",
						Tip:  "Roll only as far as you can keep the lower back neutral.",
					},
				},
			},
		},
	},
}

var videos = map[string]Video{
	"p1-pelvic-tilt":       {Query: "pelvic tilt exercise physiotherapy", Label: "Pelvic tilt"},
	"p1-cat-cow":           {Query: "cat cow stretch lower back", Label: "Cat-cow"},
	"p1-knee-to-chest":     {Query: "single knee to chest stretch", Label: "Knee to chest"},
	"p1-glute-bridge":      {Query: "glute bridge proper form", Label: "Glute bridge"},
	"p1-bird-dog":          {Query: "bird dog exercise form", Label: "Bird dog"},
	"p1-dead-bug":          {Query: "dead bug exercise form", Label: "Dead bug"},
	"p2-side-plank":        {Query: "side plank beginner", Label: "Side plank"},
	"p2-clam":              {Query: "clamshell exercise hip", Label: "Clamshell"},
	"p2-single-leg-bridge": {Query: "single leg glute bridge", Label: "Single leg bridge"},
	"p2-goblet-squat":      {Query: "goblet squat technique", Label: "Goblet squat"},
	"p2-pallof-press":      {Query: "pallof press anti rotation", Label: "Pallof press"},
	"p3-split-squat":       {Query: "split squat form", Label: "Split squat"},
	"p3-rdl":               {Query: "romanian deadlift form", Label: "Romanian deadlift"},
	"p3-hip-thrust":        {Query: "barbell hip thrust form", Label: "Hip thrust"},
	"p3-suitcase-carry":    {Query: "suitcase carry exercise", Label: "Suitcase carry"},
	"p4-deadlift":          {Query: "conventional deadlift technique", Label: "Deadlift"},
	"p4-front-squat":       {Query: "front squat technique", Label: "Front squat"},
}
