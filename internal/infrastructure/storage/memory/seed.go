package memory

import "github.com/turtacn/ClaimScout/internal/domain/patent"

// seedPatents is the fixed sample corpus loaded at startup. IDs are assigned
// on insertion (1 through 5, in this order).
var seedPatents = []patent.Patent{
	{
		Title:        "Method for Data Processing Using Machine Learning",
		PatentNumber: "US11234567",
		Abstract:     "A computer-implemented method for processing large datasets using neural networks and machine learning algorithms to improve data classification accuracy.",
		Claims:       "1. A computer-implemented method for processing data comprising: receiving input data from multiple sources; applying a neural network model to classify the data; and outputting classification results with confidence scores.",
		FiledDate:    "2022-03-15",
		Inventors:    "John Smith, Jane Doe",
		Assignee:     "Tech Corp Inc.",
	},
	{
		Title:        "Automated Data Classification System",
		PatentNumber: "US11123456",
		Abstract:     "System and method for automatically classifying incoming data streams using pattern recognition and artificial intelligence techniques.",
		Claims:       "1. A system for data classification comprising: a data input module; a pattern recognition engine; and a classification output interface configured to provide real-time results.",
		FiledDate:    "2021-11-20",
		Inventors:    "Alice Johnson, Bob Wilson",
		Assignee:     "Data Systems LLC",
	},
	{
		Title:        "Real-time Data Processing Framework",
		PatentNumber: "US10987654",
		Abstract:     "A framework for processing streaming data in real-time applications with low latency and high throughput requirements.",
		Claims:       "1. A framework for real-time data processing comprising: stream ingestion components; parallel processing units; and output distribution mechanisms.",
		FiledDate:    "2020-08-10",
		Inventors:    "Charlie Brown, David Lee",
		Assignee:     "Stream Tech Inc.",
	},
	{
		Title:        "Intelligent Document Analysis Platform",
		PatentNumber: "US11345678",
		Abstract:     "Platform for analyzing documents using natural language processing and computer vision techniques to extract structured information.",
		Claims:       "1. A document analysis platform comprising: optical character recognition modules; natural language processing engines; and structured data extraction components.",
		FiledDate:    "2022-07-01",
		Inventors:    "Emma Davis, Frank Miller",
		Assignee:     "DocTech Solutions",
	},
	{
		Title:        "Machine Learning Model Optimization System",
		PatentNumber: "US11456789",
		Abstract:     "System for automatically optimizing machine learning model parameters and architecture for improved performance.",
		Claims:       "1. A system for model optimization comprising: parameter tuning algorithms; performance evaluation metrics; and automated architecture selection methods.",
		FiledDate:    "2023-01-12",
		Inventors:    "Grace Wilson, Henry Taylor",
		Assignee:     "AI Optimization Corp",
	},
}
