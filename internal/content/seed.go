// Package content holds the built-in GCSE Computer Science syllabus:
// the topic list and the flashcards with their marking criteria.
package content

import "github.com/abhisek/chilltutor/internal/state"

// SeedTopics is the GCSE Computer Science topic list.
var SeedTopics = []state.Topic{
	{ID: 1, Name: "Computational thinking"},
	{ID: 2, Name: "Data"},
	{ID: 3, Name: "Computers"},
	{ID: 4, Name: "Networks"},
	{ID: 5, Name: "Issues and impact"},
	{ID: 6, Name: "Problem-solving with programming"},
}

// SeedFlashcards is the built-in card bank. Marking criteria are the
// examiner rubric the scoring layer marks against, one numbered point
// per credit-worthy element.
var SeedFlashcards = []state.Flashcard{
	{
		ID:       1,
		TopicID:  2,
		Question: "What do you know about: Binary representation?",
		MarkingCriteria: "Key points for full marks:\n" +
			"1. Definition: Binary is a base-2 number system using only 0s and 1s\n" +
			"2. Structure: Each position represents a power of 2 (e.g., 2^0, 2^1, 2^2)\n" +
			"3. Conversion: Explain decimal to binary conversion using powers of 2\n" +
			"4. Computing relevance: Fundamental to digital data storage and processing\n" +
			"5. Examples: Show binary representation of simple numbers (e.g., 8 = 1000)",
	},
	{
		ID:       2,
		TopicID:  2,
		Question: "What do you know about: Data storage and compression?",
		MarkingCriteria: "Key points for full marks:\n" +
			"1. Storage types: Primary (RAM) vs Secondary (HDD, SSD)\n" +
			"2. Storage units: Bits, bytes, KB, MB, GB, TB\n" +
			"3. Compression types: Lossy vs Lossless with examples\n" +
			"4. Compression benefits: Reduced file size, faster transmission\n" +
			"5. Common formats: ZIP for lossless, JPEG/MP3 for lossy",
	},
	{
		ID:       3,
		TopicID:  2,
		Question: "What do you know about: Encryption?",
		MarkingCriteria: "Key points for full marks:\n" +
			"1. Definition: Process of converting data into a secure format\n" +
			"2. Types: Symmetric vs Asymmetric encryption\n" +
			"3. Key concepts: Public/private keys, ciphers\n" +
			"4. Real-world uses: HTTPS, secure messaging, banking\n" +
			"5. Importance: Data security, privacy, confidentiality",
	},
	{
		ID:       4,
		TopicID:  1,
		Question: "What is decomposition in computational thinking?",
		MarkingCriteria: "Key points for full marks:\n" +
			"1. Definition: Breaking complex problems into smaller parts\n" +
			"2. Benefits: Makes problems more manageable and solvable\n" +
			"3. Process: Identify components and their relationships\n" +
			"4. Example: Breaking down a game into graphics, input, scoring\n" +
			"5. Application: Show how it helps in systematic problem-solving",
	},
	{
		ID:       5,
		TopicID:  1,
		Question: "Explain pattern recognition and why it's important in problem-solving.",
		MarkingCriteria: "Key points for full marks:\n" +
			"1. Definition: Identifying similarities and patterns in problems\n" +
			"2. Purpose: Finding common solutions to similar problems\n" +
			"3. Benefits: Efficiency in problem-solving, reusable solutions\n" +
			"4. Examples: Sorting algorithms, data structures patterns\n" +
			"5. Application: How patterns help in predicting and solving new problems",
	},
	{
		ID:       6,
		TopicID:  1,
		Question: "What is abstraction and how is it used in computational thinking?",
		MarkingCriteria: "Key points for full marks:\n" +
			"1. Definition: Focusing on essential details while hiding complexity\n" +
			"2. Levels: Different layers of abstraction in computing\n" +
			"3. Benefits: Simplifies problem-solving and system design\n" +
			"4. Examples: Functions, classes, APIs as abstractions\n" +
			"5. Application: How abstraction improves code reusability and maintenance",
	},
}
